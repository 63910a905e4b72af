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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	// ErrStockNotEnough 条件更新未命中, 说明库存不足
	ErrStockNotEnough = errors.New("库存不足")
)

type BookDAO interface {
	Create(ctx context.Context, b Book) (int64, error)
	Update(ctx context.Context, b Book) error
	UpdateStatus(ctx context.Context, id int64, status int64) error
	FindByID(ctx context.Context, id int64) (Book, error)
	FindBySN(ctx context.Context, sn string) (Book, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Book, error)
	List(ctx context.Context, offset, limit int, category, keyword string) ([]Book, error)
	Count(ctx context.Context, category, keyword string) (int64, error)
	// DecrStock 原子条件扣减, stock 不足时不更新任何行
	DecrStock(ctx context.Context, id int64, quantity int64) error
	IncrStock(ctx context.Context, id int64, quantity int64) error
}

func NewBookGORMDAO(db *egorm.Component) BookDAO {
	return &BookGORMDAO{db: db}
}

type BookGORMDAO struct {
	db *egorm.Component
}

func (d *BookGORMDAO) Create(ctx context.Context, b Book) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime, b.Utime = now, now
	err := d.db.WithContext(ctx).Create(&b).Error
	return b.Id, err
}

func (d *BookGORMDAO) Update(ctx context.Context, b Book) error {
	b.Utime = time.Now().UnixMilli()
	return d.db.WithContext(ctx).Model(&Book{}).
		Where("id = ?", b.Id).Updates(&b).Error
}

func (d *BookGORMDAO) UpdateStatus(ctx context.Context, id int64, status int64) error {
	return d.db.WithContext(ctx).Model(&Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *BookGORMDAO) FindByID(ctx context.Context, id int64) (Book, error) {
	var res Book
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *BookGORMDAO) FindBySN(ctx context.Context, sn string) (Book, error) {
	var res Book
	err := d.db.WithContext(ctx).
		Where("sn = ? AND status = ?", sn, StatusOnShelf).First(&res).Error
	return res, err
}

func (d *BookGORMDAO) FindByIDs(ctx context.Context, ids []int64) ([]Book, error) {
	var res []Book
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *BookGORMDAO) List(ctx context.Context, offset, limit int, category, keyword string) ([]Book, error) {
	var res []Book
	err := d.listQuery(ctx, category, keyword).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *BookGORMDAO) Count(ctx context.Context, category, keyword string) (int64, error) {
	var res int64
	err := d.listQuery(ctx, category, keyword).Count(&res).Error
	return res, err
}

func (d *BookGORMDAO) listQuery(ctx context.Context, category, keyword string) *gorm.DB {
	query := d.db.WithContext(ctx).Model(&Book{}).Where("status = ?", StatusOnShelf)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword != "" {
		like := "%" + keyword + "%"
		query = query.Where("title LIKE ? OR author_name LIKE ?", like, like)
	}
	return query
}

func (d *BookGORMDAO) DecrStock(ctx context.Context, id int64, quantity int64) error {
	res := d.db.WithContext(ctx).Model(&Book{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", quantity),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	// 并发扣减时输掉的一方在这里拿到库存不足
	if res.RowsAffected == 0 {
		return ErrStockNotEnough
	}
	return nil
}

func (d *BookGORMDAO) IncrStock(ctx context.Context, id int64, quantity int64) error {
	return d.db.WithContext(ctx).Model(&Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", quantity),
			"utime": time.Now().UnixMilli(),
		}).Error
}

type Book struct {
	Id              int64  `gorm:"primaryKey;autoIncrement;comment:图书自增ID"`
	SN              string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_book_sn;comment:图书对外展示ID"`
	Title           string `gorm:"type:varchar(255);not null;comment:书名"`
	AuthorName      string `gorm:"type:varchar(255);not null;comment:作者"`
	Category        string `gorm:"type:varchar(255);not null;index:idx_category;comment:分类"`
	Description     string `gorm:"not null;comment:简介"`
	CoverURL        string `gorm:"type:varchar(512);not null;comment:封面图"`
	Price           int64  `gorm:"not null;comment:单价;单位为分, 999表示9.99元"`
	DiscountPercent int64  `gorm:"not null;default:0;comment:折扣百分比 10表示九折"`
	Stock           int64  `gorm:"not null;default:0;comment:库存数量"`
	Status          int64  `gorm:"type:tinyint unsigned;not null;default:0;comment:状态 0=下架 1=上架"`
	Ctime           int64
	Utime           int64
}

const (
	StatusOffShelf = iota // 下架
	StatusOnShelf         // 上架
)

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Book{})
}
