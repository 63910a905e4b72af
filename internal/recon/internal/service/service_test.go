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
	"time"

	"github.com/ecodeclub/booknest/internal/payment"
	paymentmocks "github.com/ecodeclub/booknest/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(paymentSvc payment.Service) Service {
	return NewService(paymentSvc, time.Millisecond, 10*time.Millisecond, 2)
}

func TestService_Reconcile(t *testing.T) {
	t.Parallel()

	t.Run("逐笔推进滞留支付单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		paymentSvc := paymentmocks.NewMockService(ctrl)

		pmts := []payment.Payment{
			{ID: 1, SN: "p-1"},
			{ID: 2, SN: "p-2"},
		}
		paymentSvc.EXPECT().FindTimeoutPayments(gomock.Any(), 0, 10, int64(1000)).
			Return(pmts, int64(2), nil)
		paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmts[0]).Return(nil)
		paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmts[1]).Return(nil)

		svc := newTestService(paymentSvc)
		err := svc.Reconcile(context.Background(), 0, 10, 1000)
		assert.NoError(t, err)
	})

	t.Run("临时失败会重试", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		paymentSvc := paymentmocks.NewMockService(ctrl)

		pmt := payment.Payment{ID: 3, SN: "p-3"}
		paymentSvc.EXPECT().FindTimeoutPayments(gomock.Any(), 0, 10, int64(1000)).
			Return([]payment.Payment{pmt}, int64(1), nil)
		gomock.InOrder(
			paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmt).Return(errors.New("网关超时")),
			paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmt).Return(nil),
		)

		svc := newTestService(paymentSvc)
		err := svc.Reconcile(context.Background(), 0, 10, 1000)
		assert.NoError(t, err)
	})

	t.Run("单笔失败不阻塞整体", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		paymentSvc := paymentmocks.NewMockService(ctrl)

		pmts := []payment.Payment{
			{ID: 4, SN: "p-4"},
			{ID: 5, SN: "p-5"},
		}
		paymentSvc.EXPECT().FindTimeoutPayments(gomock.Any(), 0, 10, int64(1000)).
			Return(pmts, int64(2), nil)
		// 第一笔重试耗尽仍失败
		paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmts[0]).
			Return(errors.New("网关超时")).Times(3)
		paymentSvc.EXPECT().SyncWithGateway(gomock.Any(), pmts[1]).Return(nil)

		svc := newTestService(paymentSvc)
		err := svc.Reconcile(context.Background(), 0, 10, 1000)
		assert.NoError(t, err)
	})
}
