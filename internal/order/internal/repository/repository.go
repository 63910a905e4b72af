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

	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	CountOrdersByUID(ctx context.Context, uid int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	CountOrders(ctx context.Context) (int64, error)
	MarkPaidIfPending(ctx context.Context, oid int64) (bool, error)
	MarkFailedIfPending(ctx context.Context, oid int64) (bool, error)
	CancelOrderIfPending(ctx context.Context, uid int64, sn string) (bool, error)
	UpdateOrderStatus(ctx context.Context, uid int64, sn string, status domain.OrderStatus) error
	FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error)
	CancelTimeoutOrders(ctx context.Context, orderIDs []int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (r *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := r.dao.CreateOrder(ctx, r.toOrderEntity(order), r.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (r *orderRepository) UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error {
	return r.dao.UpdateOrderPaymentIDAndPaymentSN(ctx, uid, oid, pid, psn)
}

func (r *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := r.dao.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.dao.FindOrderItemsByOrderID(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toOrderDomain(order, items), nil
}

func (r *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := r.dao.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := r.dao.FindOrderItemsByOrderID(ctx, order.ID)
	if err != nil {
		return domain.Order{}, err
	}
	return r.toOrderDomain(order, items), nil
}

func (r *orderRepository) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := r.dao.ListOrdersByUID(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), nil
}

func (r *orderRepository) CountOrdersByUID(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountOrdersByUID(ctx, uid)
}

func (r *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := r.dao.ListOrders(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), nil
}

func (r *orderRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.dao.CountOrders(ctx)
}

func (r *orderRepository) MarkPaidIfPending(ctx context.Context, oid int64) (bool, error) {
	return r.dao.MarkPaidIfPending(ctx, oid, domain.StatusProcessing.ToUint8())
}

func (r *orderRepository) MarkFailedIfPending(ctx context.Context, oid int64) (bool, error) {
	return r.dao.MarkFailedIfPending(ctx, oid, domain.StatusCancelled.ToUint8())
}

func (r *orderRepository) CancelOrderIfPending(ctx context.Context, uid int64, sn string) (bool, error) {
	return r.dao.CancelOrderIfPending(ctx, uid, sn, domain.StatusCancelled.ToUint8())
}

func (r *orderRepository) UpdateOrderStatus(ctx context.Context, uid int64, sn string, status domain.OrderStatus) error {
	return r.dao.UpdateOrderStatus(ctx, uid, sn, status.ToUint8())
}

func (r *orderRepository) FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := r.dao.FindTimeoutOrders(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return r.toOrderDomain(src, nil)
	}), nil
}

func (r *orderRepository) CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error) {
	return r.dao.CountTimeoutOrders(ctx, ctime)
}

func (r *orderRepository) CancelTimeoutOrders(ctx context.Context, orderIDs []int64) error {
	return r.dao.CancelTimeoutOrders(ctx, orderIDs, domain.StatusCancelled.ToUint8())
}

func (r *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		ID:            order.ID,
		SN:            order.SN,
		BuyerID:       order.BuyerID,
		PaymentID:     order.PaymentID,
		PaymentSN:     order.PaymentSN,
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Tax:           order.Tax,
		Total:         order.Total,
		Method:        order.Method.ToUint8(),
		PaymentStatus: order.PaymentStatus.ToUint8(),
		Status:        order.Status.ToUint8(),
		Recipient:     order.Address.Recipient,
		AddressLine1:  order.Address.Line1,
		AddressLine2:  order.Address.Line2,
		City:          order.Address.City,
		State:         order.Address.State,
		PostalCode:    order.Address.PostalCode,
		Phone:         order.Address.Phone,
	}
}

func (r *orderRepository) toOrderItemEntities(items []domain.OrderItem) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) dao.OrderItem {
		return dao.OrderItem{
			BookID:          src.BookID,
			BookSN:          src.BookSN,
			Title:           src.Title,
			CoverURL:        src.CoverURL,
			UnitPrice:       src.UnitPrice,
			DiscountPercent: src.DiscountPercent,
			RealPrice:       src.RealPrice,
			Quantity:        src.Quantity,
		}
	})
}

func (r *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:        order.ID,
		SN:        order.SN,
		BuyerID:   order.BuyerID,
		PaymentID: order.PaymentID,
		PaymentSN: order.PaymentSN,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.OrderItem {
			return domain.OrderItem{
				BookID:          src.BookID,
				BookSN:          src.BookSN,
				Title:           src.Title,
				CoverURL:        src.CoverURL,
				UnitPrice:       src.UnitPrice,
				DiscountPercent: src.DiscountPercent,
				RealPrice:       src.RealPrice,
				Quantity:        src.Quantity,
			}
		}),
		Address: domain.Address{
			Recipient:  order.Recipient,
			Line1:      order.AddressLine1,
			Line2:      order.AddressLine2,
			City:       order.City,
			State:      order.State,
			PostalCode: order.PostalCode,
			Phone:      order.Phone,
		},
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Tax:           order.Tax,
		Total:         order.Total,
		Method:        domain.PaymentMethod(order.Method),
		PaymentStatus: domain.PaymentStatus(order.PaymentStatus),
		Status:        domain.OrderStatus(order.Status),
		Ctime:         order.Ctime,
		Utime:         order.Utime,
	}
}
