// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/booknest/internal/payment/internal/domain"
	"github.com/ecodeclub/booknest/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

//go:generate mockgen -source=./repository.go -destination=../../mocks/repository.mock.go -package=paymentmocks PaymentRepository
type PaymentRepository interface {
	CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error)
	UpdateGatewayOrderID(ctx context.Context, pid int64, gatewayOrderID string) error
	FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error)
	FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error)
	MarkPaidIfProcessing(ctx context.Context, pid int64, gatewayPaymentID string) (bool, error)
	MarkFailedIfNotTerminal(ctx context.Context, pid int64) (bool, error)
	FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, error)
	CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error)
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func (p *paymentRepository) CreatePayment(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
	created, err := p.dao.Insert(ctx, p.toEntity(pmt))
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(created), nil
}

func (p *paymentRepository) UpdateGatewayOrderID(ctx context.Context, pid int64, gatewayOrderID string) error {
	return p.dao.UpdateGatewayOrderID(ctx, pid, gatewayOrderID, domain.PaymentStatusProcessing.ToUint8())
}

func (p *paymentRepository) FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := p.dao.FindPaymentBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (domain.Payment, error) {
	pmt, err := p.dao.FindPaymentByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	return p.toDomain(pmt), nil
}

func (p *paymentRepository) MarkPaidIfProcessing(ctx context.Context, pid int64, gatewayPaymentID string) (bool, error) {
	return p.dao.MarkPaidIfProcessing(ctx, pid, gatewayPaymentID)
}

func (p *paymentRepository) MarkFailedIfNotTerminal(ctx context.Context, pid int64) (bool, error) {
	return p.dao.MarkFailedIfNotTerminal(ctx, pid)
}

func (p *paymentRepository) FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, error) {
	pmts, err := p.dao.FindTimeoutPayments(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(pmts, func(idx int, src dao.Payment) domain.Payment {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error) {
	return p.dao.CountTimeoutPayments(ctx, ctime)
}

func (p *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		ID:               pmt.ID,
		SN:               pmt.SN,
		OrderID:          pmt.OrderID,
		OrderSN:          pmt.OrderSN,
		PayerID:          pmt.PayerID,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderID:   pmt.GatewayOrderID,
		GatewayPaymentID: pmt.GatewayPaymentID,
		Status:           pmt.Status.ToUint8(),
	}
}

func (p *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:               pmt.ID,
		SN:               pmt.SN,
		OrderID:          pmt.OrderID,
		OrderSN:          pmt.OrderSN,
		PayerID:          pmt.PayerID,
		Amount:           pmt.Amount,
		Currency:         pmt.Currency,
		GatewayOrderID:   pmt.GatewayOrderID,
		GatewayPaymentID: pmt.GatewayPaymentID,
		Status:           domain.PaymentStatus(pmt.Status),
		Ctime:            pmt.Ctime,
		Utime:            pmt.Utime,
	}
}
