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

package order

import (
	"sync"

	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/job"
	"github.com/ecodeclub/booknest/internal/order/internal/repository/dao"
	"github.com/ecodeclub/booknest/internal/order/internal/service"
	"github.com/ecodeclub/booknest/internal/order/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	Service               = service.Service
	Order                 = domain.Order
	OrderItem             = domain.OrderItem
	Address               = domain.Address
	PaymentMethod         = domain.PaymentMethod
	PaymentStatus         = domain.PaymentStatus
	OrderStatus           = domain.OrderStatus
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	MethodGateway = domain.MethodGateway
	MethodCOD     = domain.MethodCOD

	PaymentStatusPending = domain.PaymentStatusPending
	PaymentStatusPaid    = domain.PaymentStatusPaid
	PaymentStatusFailed  = domain.PaymentStatusFailed

	StatusPending    = domain.StatusPending
	StatusProcessing = domain.StatusProcessing
	StatusCancelled  = domain.StatusCancelled
)

var (
	ErrCartEmpty       = service.ErrCartEmpty
	ErrStockNotEnough  = service.ErrStockNotEnough
	ErrOrderNotFound   = service.ErrOrderNotFound
	ErrOrderNotPending = service.ErrOrderNotPending

	NewCloseExpiredOrdersJob = job.NewCloseExpiredOrdersJob
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
