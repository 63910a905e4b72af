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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/booknest/internal/cart"
	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/payment/internal/domain"
	"github.com/ecodeclub/booknest/internal/payment/internal/event"
	"github.com/ecodeclub/booknest/internal/payment/internal/repository"
	"github.com/ecodeclub/booknest/internal/payment/internal/service/razorpay"
	"github.com/ecodeclub/booknest/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotPayable      = errors.New("订单不处于待支付状态")
	ErrPaymentNotFound      = errors.New("支付单未找到")
	ErrInvalidSignature     = errors.New("网关签名校验失败")
	ErrGatewayUnavailable   = razorpay.ErrGatewayUnavailable
	errPaymentNotProcessing = errors.New("支付单不处于网关处理中状态")
)

const gatewayTimeout = 10 * time.Second

// 网关侧支付尝试的终态
const (
	gatewayStatusCaptured = "captured"
	gatewayStatusFailed   = "failed"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/payment.mock.go -package=paymentmocks Service
type Service interface {
	// CreatePaymentOrder 为待支付订单创建支付单并在网关下单
	// 网关下单失败时本地订单保持待支付, 由超时关单与对账任务兜底
	CreatePaymentOrder(ctx context.Context, uid int64, orderSN string) (domain.CheckoutIntent, error)
	// VerifyPayment 校验网关回传签名并完成支付确认
	// 并发与重复调用安全, 只有第一次成功确认会执行扣库存清购物车等动作
	VerifyPayment(ctx context.Context, uid int64, gatewayOrderID, gatewayPaymentID, signature string) error
	// HandleFailure 买家侧支付失败回报, 终态支付单调用无效果
	HandleFailure(ctx context.Context, uid int64, gatewayOrderID string) error
	FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error)
	// SyncWithGateway 对账任务入口, 以网关侧状态为准推进本地滞留的支付单
	SyncWithGateway(ctx context.Context, pmt domain.Payment) error
	FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, int64, error)
}

func NewService(repo repository.PaymentRepository,
	gateway razorpay.GatewayAPIService,
	orderSvc order.Service,
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	producer event.PaymentEventProducer,
	snGenerator *sequencenumber.Generator,
	cfg Config) Service {
	return &service{
		repo:        repo,
		gateway:     gateway,
		orderSvc:    orderSvc,
		catalogSvc:  catalogSvc,
		cartSvc:     cartSvc,
		producer:    producer,
		snGenerator: snGenerator,
		cfg:         cfg,
		logger:      elog.DefaultLogger,
	}
}

type Config struct {
	KeyID    string
	Secret   string
	Currency string
}

type service struct {
	repo        repository.PaymentRepository
	gateway     razorpay.GatewayAPIService
	orderSvc    order.Service
	catalogSvc  catalog.Service
	cartSvc     cart.Service
	producer    event.PaymentEventProducer
	snGenerator *sequencenumber.Generator
	cfg         Config
	logger      *elog.Component
}

func (s *service) CreatePaymentOrder(ctx context.Context, uid int64, orderSN string) (domain.CheckoutIntent, error) {
	o, err := s.orderSvc.FindOrderBySNAndBuyerID(ctx, orderSN, uid)
	if err != nil {
		return domain.CheckoutIntent{}, err
	}
	if o.PaymentStatus != order.PaymentStatusPending {
		return domain.CheckoutIntent{}, fmt.Errorf("%w: sn: %s", ErrOrderNotPayable, orderSN)
	}
	sn, err := s.snGenerator.Generate(uid)
	if err != nil {
		return domain.CheckoutIntent{}, fmt.Errorf("生成支付序列号失败: %w", err)
	}
	pmt, err := s.repo.CreatePayment(ctx, domain.Payment{
		SN:       sn,
		OrderID:  o.ID,
		OrderSN:  o.SN,
		PayerID:  uid,
		Amount:   o.Total,
		Currency: s.cfg.Currency,
		Status:   domain.PaymentStatusInit,
	})
	if err != nil {
		return domain.CheckoutIntent{}, fmt.Errorf("创建支付单失败: %w", err)
	}

	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	gatewayOrderID, err := s.gateway.CreateOrder(gctx, pmt.Amount, pmt.Currency, pmt.SN)
	if err != nil {
		// 本地订单保持待支付, 留给超时关单与对账任务处理
		return domain.CheckoutIntent{}, fmt.Errorf("网关下单失败: %w", err)
	}
	if err = s.repo.UpdateGatewayOrderID(ctx, pmt.ID, gatewayOrderID); err != nil {
		return domain.CheckoutIntent{}, fmt.Errorf("记录网关订单号失败: %w", err)
	}
	if err = s.orderSvc.UpdateOrderPaymentIDAndPaymentSN(ctx, uid, o.ID, pmt.ID, pmt.SN); err != nil {
		return domain.CheckoutIntent{}, fmt.Errorf("回写订单支付信息失败: %w", err)
	}
	return domain.CheckoutIntent{
		PaymentSN:      pmt.SN,
		OrderSN:        o.SN,
		GatewayOrderID: gatewayOrderID,
		Amount:         pmt.Amount,
		Currency:       pmt.Currency,
		KeyID:          s.cfg.KeyID,
	}, nil
}

func (s *service) VerifyPayment(ctx context.Context, uid int64, gatewayOrderID, gatewayPaymentID, signature string) error {
	pmt, err := s.repo.FindPaymentByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil || pmt.PayerID != uid {
		return fmt.Errorf("%w: gatewayOrderID: %s", ErrPaymentNotFound, gatewayOrderID)
	}
	if !razorpay.VerifySignature(s.cfg.Secret, gatewayOrderID, gatewayPaymentID, signature) {
		s.failPayment(ctx, pmt)
		return fmt.Errorf("%w: gatewayOrderID: %s", ErrInvalidSignature, gatewayOrderID)
	}
	return s.confirmPayment(ctx, pmt, gatewayPaymentID)
}

// confirmPayment 条件更新竞争确认权, 只有赢家执行后续动作
func (s *service) confirmPayment(ctx context.Context, pmt domain.Payment, gatewayPaymentID string) error {
	won, err := s.repo.MarkPaidIfProcessing(ctx, pmt.ID, gatewayPaymentID)
	if err != nil {
		return fmt.Errorf("更新支付单状态失败: %w", err)
	}
	if !won {
		current, ferr := s.repo.FindPaymentBySN(ctx, pmt.SN)
		if ferr == nil && current.Status == domain.PaymentStatusPaid {
			// 重复确认, 直接幂等返回
			return nil
		}
		return fmt.Errorf("%w: sn: %s", errPaymentNotProcessing, pmt.SN)
	}
	s.settleSuccess(ctx, pmt, gatewayPaymentID)
	return nil
}

// settleSuccess 支付成功后的结算动作, 单项失败只记日志, 不影响支付结果
func (s *service) settleSuccess(ctx context.Context, pmt domain.Payment, gatewayPaymentID string) {
	if _, err := s.orderSvc.MarkPaid(ctx, pmt.OrderID); err != nil {
		s.logger.Error("订单状态推进失败",
			elog.FieldErr(err),
			elog.Int64("oid", pmt.OrderID))
	}
	o, err := s.orderSvc.FindOrderBySN(ctx, pmt.OrderSN)
	if err != nil {
		s.logger.Error("查询订单条目失败",
			elog.FieldErr(err),
			elog.String("orderSN", pmt.OrderSN))
	}
	for _, item := range o.Items {
		if err = s.catalogSvc.DecrStock(ctx, item.BookID, item.Quantity); err != nil {
			s.logger.Error("扣减库存失败",
				elog.FieldErr(err),
				elog.Int64("bookID", item.BookID),
				elog.Int64("quantity", item.Quantity))
		}
	}
	if err = s.cartSvc.Clear(ctx, pmt.PayerID); err != nil {
		s.logger.Error("清空购物车失败",
			elog.FieldErr(err),
			elog.Int64("uid", pmt.PayerID))
	}
	evt := event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		PayerID: pmt.PayerID,
		Status:  domain.PaymentStatusPaid.ToUint8(),
		Amount:  pmt.Amount,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送支付事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) HandleFailure(ctx context.Context, uid int64, gatewayOrderID string) error {
	pmt, err := s.repo.FindPaymentByGatewayOrderID(ctx, gatewayOrderID)
	if err != nil || pmt.PayerID != uid {
		return fmt.Errorf("%w: gatewayOrderID: %s", ErrPaymentNotFound, gatewayOrderID)
	}
	// 已支付成功的单子收到失败回调时不再改动, 直接当成功处理
	if pmt.Status == domain.PaymentStatusPaid {
		return nil
	}
	s.failPayment(ctx, pmt)
	return nil
}

// failPayment 把支付单与订单一起推进到失败, 已终态的不再改动
func (s *service) failPayment(ctx context.Context, pmt domain.Payment) {
	won, err := s.repo.MarkFailedIfNotTerminal(ctx, pmt.ID)
	if err != nil {
		s.logger.Error("更新支付单状态失败",
			elog.FieldErr(err),
			elog.String("sn", pmt.SN))
		return
	}
	if !won {
		return
	}
	if _, err = s.orderSvc.MarkFailed(ctx, pmt.OrderID); err != nil {
		s.logger.Error("订单状态推进失败",
			elog.FieldErr(err),
			elog.Int64("oid", pmt.OrderID))
	}
	evt := event.PaymentEvent{
		OrderSN: pmt.OrderSN,
		PayerID: pmt.PayerID,
		Status:  domain.PaymentStatusFailed.ToUint8(),
		Amount:  pmt.Amount,
	}
	if err = s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送支付事件失败",
			elog.FieldErr(err),
			elog.Any("event", evt))
	}
}

func (s *service) FindPaymentBySN(ctx context.Context, sn string) (domain.Payment, error) {
	pmt, err := s.repo.FindPaymentBySN(ctx, sn)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("%w: sn: %s", ErrPaymentNotFound, sn)
	}
	return pmt, nil
}

func (s *service) SyncWithGateway(ctx context.Context, pmt domain.Payment) error {
	// 从未到达网关的支付单没有可对账的内容, 直接关闭
	if pmt.GatewayOrderID == "" {
		s.failPayment(ctx, pmt)
		return nil
	}
	gctx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	payments, err := s.gateway.FetchPaymentsForOrder(gctx, pmt.GatewayOrderID)
	if err != nil {
		return fmt.Errorf("查询网关支付状态失败: %w", err)
	}
	for _, gp := range payments {
		if gp.Status == gatewayStatusCaptured {
			return s.confirmPayment(ctx, pmt, gp.ID)
		}
	}
	s.failPayment(ctx, pmt)
	return nil
}

func (s *service) FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]domain.Payment, int64, error) {
	var (
		total    int64
		payments []domain.Payment
		eg       errgroup.Group
	)
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountTimeoutPayments(ctx, ctime)
		return err
	})
	eg.Go(func() error {
		var err error
		payments, err = s.repo.FindTimeoutPayments(ctx, offset, limit, ctime)
		return err
	})
	return payments, total, eg.Wait()
}
