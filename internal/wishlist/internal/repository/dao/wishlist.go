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
	"gorm.io/gorm/clause"
)

type WishlistDAO interface {
	FindByUID(ctx context.Context, uid int64) ([]WishlistItem, error)
	Add(ctx context.Context, uid, bookID int64) error
	Delete(ctx context.Context, uid, bookID int64) error
}

func NewWishlistGORMDAO(db *egorm.Component) WishlistDAO {
	return &WishlistGORMDAO{db: db}
}

type WishlistGORMDAO struct {
	db *egorm.Component
}

func (d *WishlistGORMDAO) FindByUID(ctx context.Context, uid int64) ([]WishlistItem, error) {
	var res []WishlistItem
	err := d.db.WithContext(ctx).Where("uid = ?", uid).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *WishlistGORMDAO) Add(ctx context.Context, uid, bookID int64) error {
	now := time.Now().UnixMilli()
	// 重复收藏是无害的幂等操作
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&WishlistItem{
			Uid:    uid,
			BookId: bookID,
			Ctime:  now,
			Utime:  now,
		}).Error
}

func (d *WishlistGORMDAO) Delete(ctx context.Context, uid, bookID int64) error {
	return d.db.WithContext(ctx).
		Where("uid = ? AND book_id = ?", uid, bookID).Delete(&WishlistItem{}).Error
}

type WishlistItem struct {
	Id     int64 `gorm:"primaryKey;autoIncrement;comment:收藏行自增ID"`
	Uid    int64 `gorm:"not null;uniqueIndex:uniq_uid_book_id;comment:用户ID"`
	BookId int64 `gorm:"not null;uniqueIndex:uniq_uid_book_id;comment:图书自增ID"`
	Ctime  int64
	Utime  int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&WishlistItem{})
}
