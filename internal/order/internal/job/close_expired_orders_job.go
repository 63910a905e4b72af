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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*CloseExpiredOrdersJob)(nil)

// CloseExpiredOrdersJob 定时关闭超时未支付的订单
type CloseExpiredOrdersJob struct {
	svc     service.Service
	minutes int64
	seconds int64
	limit   int
}

func NewCloseExpiredOrdersJob(svc service.Service, minutes, seconds int64, limit int) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:     svc,
		minutes: minutes,
		seconds: seconds,
		limit:   limit,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	deadline := time.Now().Add(time.Duration(-c.minutes) * time.Minute).
		Add(time.Duration(-c.seconds) * time.Second).UnixMilli()
	for {
		orders, total, err := c.svc.FindTimeoutOrders(ctx, 0, c.limit, deadline)
		if err != nil {
			return fmt.Errorf("查询超时订单失败: %w", err)
		}
		if len(orders) == 0 {
			return nil
		}
		ids := slice.Map(orders, func(idx int, src domain.Order) int64 {
			return src.ID
		})
		if err = c.svc.CancelTimeoutOrders(ctx, ids); err != nil {
			return fmt.Errorf("关闭超时订单失败: %w", err)
		}
		if total <= int64(c.limit) {
			return nil
		}
	}
}
