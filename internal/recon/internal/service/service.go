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
	"fmt"
	"time"

	"github.com/ecodeclub/booknest/internal/payment"
	"github.com/ecodeclub/ekit/retry"
	"github.com/gotomicro/ego/core/elog"
)

// Service 对账服务, 以网关侧状态为准收敛本地滞留的支付单与订单
type Service interface {
	Reconcile(ctx context.Context, offset, limit int, ctime int64) error
}

type service struct {
	paymentSvc      payment.Service
	initialInterval time.Duration
	maxInterval     time.Duration
	maxRetries      int32
	l               *elog.Component
}

func NewService(paymentSvc payment.Service,
	initialInterval, maxInterval time.Duration, maxRetries int32) Service {
	return &service{
		paymentSvc:      paymentSvc,
		initialInterval: initialInterval,
		maxInterval:     maxInterval,
		maxRetries:      maxRetries,
		l:               elog.DefaultLogger,
	}
}

func (s *service) Reconcile(ctx context.Context, offset, limit int, ctime int64) error {
	for {
		payments, total, err := s.paymentSvc.FindTimeoutPayments(ctx, offset, limit, ctime)
		if err != nil {
			return fmt.Errorf("查找滞留支付单失败: %w", err)
		}

		for _, pmt := range payments {
			if err = s.syncWithRetry(ctx, pmt); err != nil {
				s.l.Warn("对账推进支付单失败",
					elog.FieldErr(err),
					elog.Any("payment", pmt),
				)
			}
		}

		if len(payments) < limit {
			return nil
		}
		if int64(limit) >= total {
			return nil
		}
	}
}

// syncWithRetry 网关查询是临时性失败的概率较高, 指数退避重试
func (s *service) syncWithRetry(ctx context.Context, pmt payment.Payment) error {
	strategy, err := retry.NewExponentialBackoffRetryStrategy(s.initialInterval, s.maxInterval, s.maxRetries)
	if err != nil {
		return err
	}
	for {
		err = s.paymentSvc.SyncWithGateway(ctx, pmt)
		if err == nil {
			return nil
		}
		d, ok := strategy.Next()
		if !ok {
			return fmt.Errorf("超过最大重试次数: %w", err)
		}
		time.Sleep(d)
	}
}
