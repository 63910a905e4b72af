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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
)

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) (Payment, error)
	UpdateGatewayOrderID(ctx context.Context, pid int64, gatewayOrderID string, status uint8) error
	FindPaymentBySN(ctx context.Context, sn string) (Payment, error)
	FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error)
	// MarkPaidIfProcessing 条件更新, 并发确认时只有一个调用能返回 true
	MarkPaidIfProcessing(ctx context.Context, pid int64, gatewayPaymentID string) (bool, error)
	MarkFailedIfNotTerminal(ctx context.Context, pid int64) (bool, error)
	FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]Payment, error)
	CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error)
}

func NewPaymentGORMDAO(db *egorm.Component) PaymentDAO {
	return &PaymentGORMDAO{db: db}
}

type PaymentGORMDAO struct {
	db *egorm.Component
}

func (g *PaymentGORMDAO) Insert(ctx context.Context, pmt Payment) (Payment, error) {
	now := time.Now().UnixMilli()
	pmt.Ctime, pmt.Utime = now, now
	err := g.db.WithContext(ctx).Create(&pmt).Error
	return pmt, err
}

func (g *PaymentGORMDAO) UpdateGatewayOrderID(ctx context.Context, pid int64, gatewayOrderID string, status uint8) error {
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ?", pid).
		Updates(map[string]any{
			"gateway_order_id": gatewayOrderID,
			"status":           status,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (g *PaymentGORMDAO) FindPaymentBySN(ctx context.Context, sn string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) FindPaymentByGatewayOrderID(ctx context.Context, gatewayOrderID string) (Payment, error) {
	var res Payment
	err := g.db.WithContext(ctx).Where("gateway_order_id = ?", gatewayOrderID).First(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) MarkPaidIfProcessing(ctx context.Context, pid int64, gatewayPaymentID string) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ? AND status = ?", pid, StatusProcessing).
		Updates(map[string]any{
			"gateway_payment_id": gatewayPaymentID,
			"status":             StatusPaid,
			"utime":              time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *PaymentGORMDAO) MarkFailedIfNotTerminal(ctx context.Context, pid int64) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ? AND status IN ?", pid, []uint8{StatusInit, StatusProcessing}).
		Updates(map[string]any{
			"status": StatusFailed,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *PaymentGORMDAO) FindTimeoutPayments(ctx context.Context, offset, limit int, ctime int64) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("status IN ? AND ctime <= ?", []uint8{StatusInit, StatusProcessing}, ctime).
		Offset(offset).Limit(limit).Order("ctime ASC").Find(&res).Error
	return res, err
}

func (g *PaymentGORMDAO) CountTimeoutPayments(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Payment{}).
		Where("status IN ? AND ctime <= ?", []uint8{StatusInit, StatusProcessing}, ctime).
		Count(&res).Error
	return res, err
}

const (
	StatusInit       uint8 = 1
	StatusProcessing uint8 = 2
	StatusPaid       uint8 = 3
	StatusFailed     uint8 = 4
)

type Payment struct {
	ID               int64  `gorm:"primaryKey,autoIncrement;comment:支付自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_payment_sn;comment:支付序列号"`
	OrderID          int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	OrderSN          string `gorm:"type:varchar(255);not null;comment:订单序列号"`
	PayerID          int64  `gorm:"not null;index:idx_payer_id;comment:支付者ID"`
	Amount           int64  `gorm:"not null;comment:支付金额, 单位为分"`
	Currency         string `gorm:"type:varchar(16);not null;default:'INR'"`
	GatewayOrderID   string `gorm:"type:varchar(255);index:idx_gateway_order_id;comment:网关订单号"`
	GatewayPaymentID string `gorm:"type:varchar(255);comment:网关支付号"`
	Status           uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1=初始化 2=网关处理中 3=已支付 4=失败"`
	Ctime            int64
	Utime            int64
}

func (Payment) TableName() string {
	return "payments"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Payment{})
}
