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

package event

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	notificationmocks "github.com/ecodeclub/booknest/internal/notification/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMQ(t *testing.T) mq.MQ {
	t.Helper()
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), PaymentEventName, 1)
	require.NoError(t, err)
	return q
}

func produce(t *testing.T, q mq.MQ, evt PaymentEvent) {
	t.Helper()
	producer, err := q.Producer(PaymentEventName)
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
}

func TestPaymentEventConsumer_Consume(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name string
		evt  PaymentEvent
		mock func(svc *notificationmocks.MockService)
	}{
		{
			name: "支付成功发确认邮件",
			evt: PaymentEvent{
				OrderSN: "BN-order-1",
				PayerID: 7,
				Status:  PaymentStatusPaid,
				Amount:  20111,
			},
			mock: func(svc *notificationmocks.MockService) {
				svc.EXPECT().SendOrderConfirmation(gomock.Any(), "BN-order-1", int64(7)).
					Return(nil)
			},
		},
		{
			name: "支付失败发关单邮件",
			evt: PaymentEvent{
				OrderSN: "BN-order-2",
				PayerID: 8,
				Status:  PaymentStatusFailed,
				Amount:  500,
			},
			mock: func(svc *notificationmocks.MockService) {
				svc.EXPECT().SendPaymentFailed(gomock.Any(), "BN-order-2", int64(8)).
					Return(nil)
			},
		},
		{
			name: "未知状态直接忽略",
			evt: PaymentEvent{
				OrderSN: "BN-order-3",
				PayerID: 9,
				Status:  1,
			},
			mock: func(svc *notificationmocks.MockService) {},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := notificationmocks.NewMockService(ctrl)
			tc.mock(svc)

			q := newTestMQ(t)
			c, err := NewPaymentEventConsumer(svc, q)
			require.NoError(t, err)
			produce(t, q, tc.evt)

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			require.NoError(t, c.Consume(ctx))
		})
	}
}
