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
	"testing"

	cartmocks "github.com/ecodeclub/booknest/internal/cart/mocks"
	catalogmocks "github.com/ecodeclub/booknest/internal/catalog/mocks"
	"github.com/ecodeclub/booknest/internal/order"
	ordermocks "github.com/ecodeclub/booknest/internal/order/mocks"
	"github.com/ecodeclub/booknest/internal/payment/internal/domain"
	"github.com/ecodeclub/booknest/internal/payment/internal/event"
	"github.com/ecodeclub/booknest/internal/payment/internal/service/razorpay"
	paymentmocks "github.com/ecodeclub/booknest/internal/payment/mocks"
	"github.com/ecodeclub/booknest/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test_secret"

func newTestService(t *testing.T, ctrl *gomock.Controller) (*service,
	*paymentmocks.MockPaymentRepository,
	*paymentmocks.MockGatewayAPIService,
	*ordermocks.MockService,
	*catalogmocks.MockService,
	*cartmocks.MockService,
	*paymentmocks.MockPaymentEventProducer) {
	t.Helper()
	repo := paymentmocks.NewMockPaymentRepository(ctrl)
	gateway := paymentmocks.NewMockGatewayAPIService(ctrl)
	orderSvc := ordermocks.NewMockService(ctrl)
	catalogSvc := catalogmocks.NewMockService(ctrl)
	cartSvc := cartmocks.NewMockService(ctrl)
	producer := paymentmocks.NewMockPaymentEventProducer(ctrl)
	svc := NewService(repo, gateway, orderSvc, catalogSvc, cartSvc, producer,
		sequencenumber.NewGenerator(), Config{
			KeyID:    "rzp_test_key",
			Secret:   testSecret,
			Currency: "INR",
		}).(*service)
	return svc, repo, gateway, orderSvc, catalogSvc, cartSvc, producer
}

func TestService_CreatePaymentOrder(t *testing.T) {
	t.Parallel()

	t.Run("正常创建", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, gateway, orderSvc, _, _, _ := newTestService(t, ctrl)

		orderSvc.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "order-sn-1", int64(7)).
			Return(order.Order{
				ID:            11,
				SN:            "order-sn-1",
				BuyerID:       7,
				Total:         19800,
				PaymentStatus: order.PaymentStatusPending,
			}, nil)
		repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
				assert.Equal(t, int64(19800), pmt.Amount)
				assert.Equal(t, domain.PaymentStatusInit, pmt.Status)
				pmt.ID = 21
				return pmt, nil
			})
		gateway.EXPECT().CreateOrder(gomock.Any(), int64(19800), "INR", gomock.Any()).
			Return("order_G123", nil)
		repo.EXPECT().UpdateGatewayOrderID(gomock.Any(), int64(21), "order_G123").Return(nil)
		orderSvc.EXPECT().UpdateOrderPaymentIDAndPaymentSN(gomock.Any(), int64(7), int64(11), int64(21), gomock.Any()).
			Return(nil)

		intent, err := svc.CreatePaymentOrder(context.Background(), 7, "order-sn-1")
		require.NoError(t, err)
		assert.Equal(t, "order_G123", intent.GatewayOrderID)
		assert.Equal(t, int64(19800), intent.Amount)
		assert.Equal(t, "rzp_test_key", intent.KeyID)
	})

	t.Run("订单已是终态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, _, _, orderSvc, _, _, _ := newTestService(t, ctrl)

		orderSvc.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "order-sn-2", int64(7)).
			Return(order.Order{
				SN:            "order-sn-2",
				PaymentStatus: order.PaymentStatusPaid,
			}, nil)

		_, err := svc.CreatePaymentOrder(context.Background(), 7, "order-sn-2")
		assert.ErrorIs(t, err, ErrOrderNotPayable)
	})

	t.Run("网关不可用时订单保持待支付", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, gateway, orderSvc, _, _, _ := newTestService(t, ctrl)

		orderSvc.EXPECT().FindOrderBySNAndBuyerID(gomock.Any(), "order-sn-3", int64(7)).
			Return(order.Order{
				ID:            13,
				SN:            "order-sn-3",
				BuyerID:       7,
				Total:         6000,
				PaymentStatus: order.PaymentStatusPending,
			}, nil)
		repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, pmt domain.Payment) (domain.Payment, error) {
				pmt.ID = 23
				return pmt, nil
			})
		gateway.EXPECT().CreateOrder(gomock.Any(), int64(6000), "INR", gomock.Any()).
			Return("", razorpay.ErrGatewayUnavailable)

		_, err := svc.CreatePaymentOrder(context.Background(), 7, "order-sn-3")
		assert.ErrorIs(t, err, ErrGatewayUnavailable)
	})
}

func TestService_VerifyPayment(t *testing.T) {
	t.Parallel()

	pmt := domain.Payment{
		ID:             21,
		SN:             "payment-sn-1",
		OrderID:        11,
		OrderSN:        "order-sn-1",
		PayerID:        7,
		Amount:         19800,
		GatewayOrderID: "order_G123",
		Status:         domain.PaymentStatusProcessing,
	}

	t.Run("签名正确首次确认", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, orderSvc, catalogSvc, cartSvc, producer := newTestService(t, ctrl)

		sig := razorpay.ComputeSignature(testSecret, "order_G123", "pay_P456")
		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)
		repo.EXPECT().MarkPaidIfProcessing(gomock.Any(), int64(21), "pay_P456").Return(true, nil)
		orderSvc.EXPECT().MarkPaid(gomock.Any(), int64(11)).Return(true, nil)
		orderSvc.EXPECT().FindOrderBySN(gomock.Any(), "order-sn-1").
			Return(order.Order{
				ID: 11,
				Items: []order.OrderItem{
					{BookID: 100, Quantity: 2},
					{BookID: 101, Quantity: 1},
				},
			}, nil)
		catalogSvc.EXPECT().DecrStock(gomock.Any(), int64(100), int64(2)).Return(nil)
		catalogSvc.EXPECT().DecrStock(gomock.Any(), int64(101), int64(1)).Return(nil)
		cartSvc.EXPECT().Clear(gomock.Any(), int64(7)).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), event.PaymentEvent{
			OrderSN: "order-sn-1",
			PayerID: 7,
			Status:  domain.PaymentStatusPaid.ToUint8(),
			Amount:  19800,
		}).Return(nil)

		err := svc.VerifyPayment(context.Background(), 7, "order_G123", "pay_P456", sig)
		assert.NoError(t, err)
	})

	t.Run("签名错误进入失败终态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, orderSvc, _, _, producer := newTestService(t, ctrl)

		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)
		repo.EXPECT().MarkFailedIfNotTerminal(gomock.Any(), int64(21)).Return(true, nil)
		orderSvc.EXPECT().MarkFailed(gomock.Any(), int64(11)).Return(true, nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.VerifyPayment(context.Background(), 7, "order_G123", "pay_P456", "bad-signature")
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("重复确认幂等返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, _, _, _, _ := newTestService(t, ctrl)

		sig := razorpay.ComputeSignature(testSecret, "order_G123", "pay_P456")
		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)
		repo.EXPECT().MarkPaidIfProcessing(gomock.Any(), int64(21), "pay_P456").Return(false, nil)
		paid := pmt
		paid.Status = domain.PaymentStatusPaid
		repo.EXPECT().FindPaymentBySN(gomock.Any(), "payment-sn-1").Return(paid, nil)

		// 竞争失败但已是支付成功, 不重复扣库存也不报错
		err := svc.VerifyPayment(context.Background(), 7, "order_G123", "pay_P456", sig)
		assert.NoError(t, err)
	})

	t.Run("支付单不属于当前用户", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, _, _, _, _ := newTestService(t, ctrl)

		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)

		err := svc.VerifyPayment(context.Background(), 8, "order_G123", "pay_P456", "whatever")
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})

	t.Run("扣库存失败不影响支付结果", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, orderSvc, catalogSvc, cartSvc, producer := newTestService(t, ctrl)

		sig := razorpay.ComputeSignature(testSecret, "order_G123", "pay_P456")
		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)
		repo.EXPECT().MarkPaidIfProcessing(gomock.Any(), int64(21), "pay_P456").Return(true, nil)
		orderSvc.EXPECT().MarkPaid(gomock.Any(), int64(11)).Return(true, nil)
		orderSvc.EXPECT().FindOrderBySN(gomock.Any(), "order-sn-1").
			Return(order.Order{
				ID:    11,
				Items: []order.OrderItem{{BookID: 100, Quantity: 2}},
			}, nil)
		catalogSvc.EXPECT().DecrStock(gomock.Any(), int64(100), int64(2)).
			Return(errors.New("库存不足"))
		cartSvc.EXPECT().Clear(gomock.Any(), int64(7)).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.VerifyPayment(context.Background(), 7, "order_G123", "pay_P456", sig)
		assert.NoError(t, err)
	})
}

func TestService_HandleFailure(t *testing.T) {
	t.Parallel()

	pmt := domain.Payment{
		ID:             21,
		SN:             "payment-sn-1",
		OrderID:        11,
		OrderSN:        "order-sn-1",
		PayerID:        7,
		GatewayOrderID: "order_G123",
		Status:         domain.PaymentStatusProcessing,
	}

	t.Run("首次标记失败", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, orderSvc, _, _, producer := newTestService(t, ctrl)

		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(pmt, nil)
		repo.EXPECT().MarkFailedIfNotTerminal(gomock.Any(), int64(21)).Return(true, nil)
		orderSvc.EXPECT().MarkFailed(gomock.Any(), int64(11)).Return(true, nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.HandleFailure(context.Background(), 7, "order_G123")
		assert.NoError(t, err)
	})

	t.Run("重复标记失败幂等", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, _, _, _, _ := newTestService(t, ctrl)

		failed := pmt
		failed.Status = domain.PaymentStatusFailed
		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(failed, nil)
		repo.EXPECT().MarkFailedIfNotTerminal(gomock.Any(), int64(21)).Return(false, nil)

		err := svc.HandleFailure(context.Background(), 7, "order_G123")
		assert.NoError(t, err)
	})

	t.Run("已支付成功则直接成功返回且不改动状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, _, _, _, _ := newTestService(t, ctrl)

		paid := pmt
		paid.Status = domain.PaymentStatusPaid
		repo.EXPECT().FindPaymentByGatewayOrderID(gomock.Any(), "order_G123").Return(paid, nil)

		err := svc.HandleFailure(context.Background(), 7, "order_G123")
		assert.NoError(t, err)
	})
}

func TestService_SyncWithGateway(t *testing.T) {
	t.Parallel()

	t.Run("网关已收款则本地补齐", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, gateway, orderSvc, catalogSvc, cartSvc, producer := newTestService(t, ctrl)

		pmt := domain.Payment{
			ID:             21,
			SN:             "payment-sn-1",
			OrderID:        11,
			OrderSN:        "order-sn-1",
			PayerID:        7,
			Amount:         5000,
			GatewayOrderID: "order_G123",
			Status:         domain.PaymentStatusProcessing,
		}
		gateway.EXPECT().FetchPaymentsForOrder(gomock.Any(), "order_G123").
			Return([]razorpay.GatewayPayment{
				{ID: "pay_P1", Status: "failed"},
				{ID: "pay_P2", Status: "captured"},
			}, nil)
		repo.EXPECT().MarkPaidIfProcessing(gomock.Any(), int64(21), "pay_P2").Return(true, nil)
		orderSvc.EXPECT().MarkPaid(gomock.Any(), int64(11)).Return(true, nil)
		orderSvc.EXPECT().FindOrderBySN(gomock.Any(), "order-sn-1").
			Return(order.Order{ID: 11}, nil)
		cartSvc.EXPECT().Clear(gomock.Any(), int64(7)).Return(nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
		_ = catalogSvc

		err := svc.SyncWithGateway(context.Background(), pmt)
		assert.NoError(t, err)
	})

	t.Run("网关无成功记录则关闭", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, gateway, orderSvc, _, _, producer := newTestService(t, ctrl)

		pmt := domain.Payment{
			ID:             22,
			SN:             "payment-sn-2",
			OrderID:        12,
			OrderSN:        "order-sn-2",
			PayerID:        7,
			GatewayOrderID: "order_G124",
			Status:         domain.PaymentStatusProcessing,
		}
		gateway.EXPECT().FetchPaymentsForOrder(gomock.Any(), "order_G124").
			Return([]razorpay.GatewayPayment{{ID: "pay_P3", Status: "failed"}}, nil)
		repo.EXPECT().MarkFailedIfNotTerminal(gomock.Any(), int64(22)).Return(true, nil)
		orderSvc.EXPECT().MarkFailed(gomock.Any(), int64(12)).Return(true, nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.SyncWithGateway(context.Background(), pmt)
		assert.NoError(t, err)
	})

	t.Run("从未到达网关直接关闭", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc, repo, _, orderSvc, _, _, producer := newTestService(t, ctrl)

		pmt := domain.Payment{
			ID:      23,
			SN:      "payment-sn-3",
			OrderID: 13,
			OrderSN: "order-sn-3",
			PayerID: 7,
			Status:  domain.PaymentStatusInit,
		}
		repo.EXPECT().MarkFailedIfNotTerminal(gomock.Any(), int64(23)).Return(true, nil)
		orderSvc.EXPECT().MarkFailed(gomock.Any(), int64(13)).Return(true, nil)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.SyncWithGateway(context.Background(), pmt)
		assert.NoError(t, err)
	})
}
