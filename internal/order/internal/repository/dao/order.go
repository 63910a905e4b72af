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
	"gorm.io/gorm"
)

type OrderDAO interface {
	CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error)
	UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error
	FindOrderBySN(ctx context.Context, sn string) (Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error)
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]Order, error)
	CountOrdersByUID(ctx context.Context, uid int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]Order, error)
	CountOrders(ctx context.Context) (int64, error)
	// MarkPaidIfPending 条件更新, 只有把订单从待支付推进到已支付的调用会返回 true
	MarkPaidIfPending(ctx context.Context, oid int64, orderStatus uint8) (bool, error)
	MarkFailedIfPending(ctx context.Context, oid int64, orderStatus uint8) (bool, error)
	UpdateOrderStatus(ctx context.Context, uid int64, sn string, status uint8) error
	CancelOrderIfPending(ctx context.Context, uid int64, sn string, cancelled uint8) (bool, error)
	FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error)
	CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error)
	CancelTimeoutOrders(ctx context.Context, orderIDs []int64, cancelled uint8) error
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func (g *OrderGORMDAO) CreateOrder(ctx context.Context, order Order, items []OrderItem) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		order.Ctime, order.Utime = now, now
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
			items[i].Ctime, items[i].Utime = now, now
		}
		return tx.Create(&items).Error
	})
	return order.ID, err
}

func (g *OrderGORMDAO) UpdateOrderPaymentIDAndPaymentSN(ctx context.Context, uid, oid, pid int64, psn string) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND id = ?", uid, oid).
		Updates(map[string]any{
			"payment_id": pid,
			"payment_sn": psn,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (g *OrderGORMDAO) FindOrderBySN(ctx context.Context, sn string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).
		Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&res).Error
	return res, err
}

func (g *OrderGORMDAO) FindOrderItemsByOrderID(ctx context.Context, oid int64) ([]OrderItem, error) {
	var res []OrderItem
	err := g.db.WithContext(ctx).Where("order_id = ?", oid).Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", uid).
		Offset(offset).Limit(limit).Order("ctime DESC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountOrdersByUID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", uid).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) ListOrders(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("ctime DESC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountOrders(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) MarkPaidIfPending(ctx context.Context, oid int64, orderStatus uint8) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND payment_status = ?", oid, PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": PaymentStatusPaid,
			"status":         orderStatus,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *OrderGORMDAO) MarkFailedIfPending(ctx context.Context, oid int64, orderStatus uint8) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND payment_status = ?", oid, PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": PaymentStatusFailed,
			"status":         orderStatus,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *OrderGORMDAO) UpdateOrderStatus(ctx context.Context, uid int64, sn string, status uint8) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND sn = ?", uid, sn).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (g *OrderGORMDAO) CancelOrderIfPending(ctx context.Context, uid int64, sn string, cancelled uint8) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("buyer_id = ? AND sn = ? AND payment_status = ?", uid, sn, PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": PaymentStatusFailed,
			"status":         cancelled,
			"utime":          time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *OrderGORMDAO) FindTimeoutOrders(ctx context.Context, offset, limit int, ctime int64) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).
		Where("payment_status = ? AND ctime <= ?", PaymentStatusPending, ctime).
		Offset(offset).Limit(limit).Order("ctime ASC").Find(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CountTimeoutOrders(ctx context.Context, ctime int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("payment_status = ? AND ctime <= ?", PaymentStatusPending, ctime).
		Count(&res).Error
	return res, err
}

func (g *OrderGORMDAO) CancelTimeoutOrders(ctx context.Context, orderIDs []int64, cancelled uint8) error {
	return g.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND payment_status = ?", orderIDs, PaymentStatusPending).
		Updates(map[string]any{
			"payment_status": PaymentStatusFailed,
			"status":         cancelled,
			"utime":          time.Now().UnixMilli(),
		}).Error
}

const (
	PaymentStatusPending uint8 = 1
	PaymentStatusPaid    uint8 = 2
	PaymentStatusFailed  uint8 = 3
)

type Order struct {
	ID            int64  `gorm:"primaryKey,autoIncrement;comment:订单自增ID"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerID       int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	PaymentID     int64  `gorm:"comment:支付记录ID"`
	PaymentSN     string `gorm:"type:varchar(255);comment:支付序列号"`
	Subtotal      int64  `gorm:"not null;comment:商品小计, 单位为分"`
	ShippingCost  int64  `gorm:"not null;comment:运费, 单位为分"`
	Tax           int64  `gorm:"not null;comment:税费, 单位为分"`
	Total         int64  `gorm:"not null;comment:应付总额, 单位为分"`
	Method        uint8  `gorm:"type:tinyint unsigned;not null;comment:支付方式 1=网关, 2=货到付款"`
	PaymentStatus uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:支付状态 1=待支付 2=已支付 3=失败"`
	Status        uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:履约状态"`
	Recipient     string `gorm:"type:varchar(255);not null;comment:收件人"`
	AddressLine1  string `gorm:"type:varchar(512);not null"`
	AddressLine2  string `gorm:"type:varchar(512)"`
	City          string `gorm:"type:varchar(255);not null"`
	State         string `gorm:"type:varchar(255)"`
	PostalCode    string `gorm:"type:varchar(64);not null"`
	Phone         string `gorm:"type:varchar(64)"`
	Ctime         int64
	Utime         int64
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID              int64  `gorm:"primaryKey,autoIncrement"`
	OrderID         int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	BookID          int64  `gorm:"not null;comment:图书ID"`
	BookSN          string `gorm:"type:varchar(255);not null;comment:图书序列号"`
	Title           string `gorm:"type:varchar(512);not null;comment:下单时的书名快照"`
	CoverURL        string `gorm:"type:varchar(1024)"`
	UnitPrice       int64  `gorm:"not null;comment:下单时原单价, 单位为分"`
	DiscountPercent int64  `gorm:"not null;comment:下单时折扣百分比"`
	RealPrice       int64  `gorm:"not null;comment:折后单价, 单位为分"`
	Quantity        int64  `gorm:"not null"`
	Ctime           int64
	Utime           int64
}

func (OrderItem) TableName() string {
	return "order_items"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Order{}, &OrderItem{})
}
