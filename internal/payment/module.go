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

package payment

import (
	"sync"

	"github.com/ecodeclub/booknest/internal/payment/internal/domain"
	"github.com/ecodeclub/booknest/internal/payment/internal/event"
	"github.com/ecodeclub/booknest/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/booknest/internal/payment/internal/service"
	"github.com/ecodeclub/booknest/internal/payment/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
)

type (
	Handler        = web.Handler
	Service        = service.Service
	Payment        = domain.Payment
	CheckoutIntent = domain.CheckoutIntent
	PaymentStatus  = domain.PaymentStatus
)

const (
	StatusInit       = domain.PaymentStatusInit
	StatusProcessing = domain.PaymentStatusProcessing
	StatusPaid       = domain.PaymentStatusPaid
	StatusFailed     = domain.PaymentStatusFailed
)

var (
	ErrOrderNotPayable    = service.ErrOrderNotPayable
	ErrPaymentNotFound    = service.ErrPaymentNotFound
	ErrInvalidSignature   = service.ErrInvalidSignature
	ErrGatewayUnavailable = service.ErrGatewayUnavailable
)

type Module struct {
	Hdl *Handler
	Svc Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPaymentGORMDAO(db)
}

func initProducer(q mq.MQ) (event.PaymentEventProducer, error) {
	p, err := q.Producer(event.PaymentEventName)
	if err != nil {
		return nil, err
	}
	return event.NewPaymentEventProducer(p)
}
