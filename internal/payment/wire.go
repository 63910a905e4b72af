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

//go:build wireinject

package payment

import (
	"github.com/ecodeclub/booknest/internal/cart"
	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/payment/internal/repository"
	"github.com/ecodeclub/booknest/internal/payment/internal/service"
	"github.com/ecodeclub/booknest/internal/payment/internal/web"
	"github.com/ecodeclub/booknest/internal/payment/ioc"
	"github.com/ecodeclub/booknest/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cache ecache.Cache,
	orderSvc order.Service,
	catalogSvc catalog.Service,
	cartSvc cart.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewPaymentRepository,
		sequencenumber.NewGenerator,
		initProducer,
		ioc.InitRazorpayConfig,
		ioc.InitRazorpayClient,
		ioc.InitGatewayAPIService,
		ioc.InitServiceConfig,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}
