//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/booknest/internal/cart"
	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/notification"
	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/payment"
	"github.com/ecodeclub/booknest/internal/recon"
	"github.com/ecodeclub/booknest/internal/user"
	"github.com/ecodeclub/booknest/internal/wishlist"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitSession, InitEmailService)

func InitApp() (*App, error) {
	wire.Build(
		BaseSet,
		catalog.InitModule,
		wire.FieldsOf(new(*catalog.Module), "Hdl", "AdminHdl", "Svc"),
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl", "Svc"),
		wishlist.InitModule,
		wire.FieldsOf(new(*wishlist.Module), "Hdl"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "Svc"),
		payment.InitModule,
		wire.FieldsOf(new(*payment.Module), "Hdl"),
		recon.InitModule,
		wire.FieldsOf(new(*recon.Module), "SyncPaymentAndOrderJob"),
		user.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "Svc"),
		notification.InitModule,
		initCloseExpiredOrdersJob,
		initCronJobs,
		initConsumers,
		initGinxServer,
		InitAdminServer,
		wire.Struct(new(App), "*"),
	)
	return new(App), nil
}
