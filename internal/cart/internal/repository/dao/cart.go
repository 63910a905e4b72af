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

type CartDAO interface {
	FindByUID(ctx context.Context, uid int64) ([]CartItem, error)
	// AddQuantity 已有同书的行则累加数量, 否则新建行
	AddQuantity(ctx context.Context, uid, bookID, quantity int64) error
	UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error
	Delete(ctx context.Context, uid, bookID int64) error
	DeleteByUID(ctx context.Context, uid int64) error
}

func NewCartGORMDAO(db *egorm.Component) CartDAO {
	return &CartGORMDAO{db: db}
}

type CartGORMDAO struct {
	db *egorm.Component
}

func (d *CartGORMDAO) FindByUID(ctx context.Context, uid int64) ([]CartItem, error) {
	var res []CartItem
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *CartGORMDAO) AddQuantity(ctx context.Context, uid, bookID, quantity int64) error {
	now := time.Now().UnixMilli()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&CartItem{}).
			Where("uid = ? AND book_id = ?", uid, bookID).
			Updates(map[string]any{
				"quantity": gorm.Expr("quantity + ?", quantity),
				"utime":    now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			return nil
		}
		return tx.Create(&CartItem{
			Uid:      uid,
			BookId:   bookID,
			Quantity: quantity,
			Ctime:    now,
			Utime:    now,
		}).Error
	})
}

func (d *CartGORMDAO) UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error {
	return d.db.WithContext(ctx).Model(&CartItem{}).
		Where("uid = ? AND book_id = ?", uid, bookID).
		Updates(map[string]any{
			"quantity": quantity,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

func (d *CartGORMDAO) Delete(ctx context.Context, uid, bookID int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND book_id = ?", uid, bookID).Delete(&CartItem{}).Error
}

func (d *CartGORMDAO) DeleteByUID(ctx context.Context, uid int64) error {
	return d.db.WithContext(ctx).Where("uid = ?", uid).Delete(&CartItem{}).Error
}

type CartItem struct {
	Id       int64 `gorm:"primaryKey;autoIncrement;comment:购物车行自增ID"`
	Uid      int64 `gorm:"not null;uniqueIndex:uniq_uid_book_id;comment:用户ID"`
	BookId   int64 `gorm:"not null;uniqueIndex:uniq_uid_book_id;comment:图书自增ID"`
	Quantity int64 `gorm:"not null;comment:购买数量"`
	Ctime    int64
	Utime    int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&CartItem{})
}
