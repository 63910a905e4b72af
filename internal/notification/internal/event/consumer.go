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

	"github.com/ecodeclub/booknest/internal/notification/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentEventConsumer 消费支付结果事件并给买家发送邮件通知。
// 通知失败只记录日志, 不影响支付流程。
type PaymentEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentEventConsumer(svc service.Service, q mq.MQ) (*PaymentEventConsumer, error) {
	groupID := "notification-payment"
	consumer, err := q.Consumer(PaymentEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PaymentEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费支付结果事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaymentEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return err
	}

	var evt PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return err
	}

	switch evt.Status {
	case PaymentStatusPaid:
		err = c.svc.SendOrderConfirmation(ctx, evt.OrderSN, evt.PayerID)
	case PaymentStatusFailed:
		err = c.svc.SendPaymentFailed(ctx, evt.OrderSN, evt.PayerID)
	default:
		return nil
	}
	if err != nil {
		c.logger.Error("发送订单通知邮件失败",
			elog.FieldErr(err),
			elog.String("orderSn", evt.OrderSN),
			elog.Int64("payerId", evt.PayerID))
	}
	return nil
}
