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
	"time"

	"github.com/ecodeclub/booknest/internal/recon/internal/service"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPaymentAndOrderJob)(nil)

// SyncPaymentAndOrderJob 定时对账, 扫描创建已久却仍未终态的支付单
type SyncPaymentAndOrderJob struct {
	svc     service.Service
	minutes int64
	seconds int64
	limit   int
}

func NewSyncPaymentAndOrderJob(svc service.Service, minutes, seconds int64, limit int) *SyncPaymentAndOrderJob {
	return &SyncPaymentAndOrderJob{
		svc:     svc,
		minutes: minutes,
		seconds: seconds,
		limit:   limit,
	}
}

func (s *SyncPaymentAndOrderJob) Name() string {
	return "sync_payment_and_order_job"
}

func (s *SyncPaymentAndOrderJob) Run(ctx context.Context) error {
	ctime := time.Now().Add(time.Duration(-s.minutes)*time.Minute + time.Duration(-s.seconds)*time.Second).UnixMilli()
	return s.svc.Reconcile(ctx, 0, s.limit, ctime)
}
