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

package repository

import (
	"context"

	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

type BookRepository interface {
	Create(ctx context.Context, b domain.Book) (int64, error)
	Update(ctx context.Context, b domain.Book) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookStatus) error
	FindByID(ctx context.Context, id int64) (domain.Book, error)
	FindBySN(ctx context.Context, sn string) (domain.Book, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Book, error)
	List(ctx context.Context, offset, limit int, category, keyword string) ([]domain.Book, error)
	Total(ctx context.Context, category, keyword string) (int64, error)
	DecrStock(ctx context.Context, id int64, quantity int64) error
	IncrStock(ctx context.Context, id int64, quantity int64) error
}

func NewBookRepository(d dao.BookDAO, c cache.BookCache) BookRepository {
	return &bookRepository{
		d:      d,
		c:      c,
		logger: elog.DefaultLogger,
	}
}

type bookRepository struct {
	d      dao.BookDAO
	c      cache.BookCache
	logger *elog.Component
}

func (r *bookRepository) Create(ctx context.Context, b domain.Book) (int64, error) {
	return r.d.Create(ctx, r.toEntity(b))
}

func (r *bookRepository) Update(ctx context.Context, b domain.Book) error {
	err := r.d.Update(ctx, r.toEntity(b))
	if err != nil {
		return err
	}
	r.evict(ctx, b.SN)
	return nil
}

func (r *bookRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookStatus) error {
	b, err := r.d.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = r.d.UpdateStatus(ctx, id, status.ToInt64()); err != nil {
		return err
	}
	r.evict(ctx, b.SN)
	return nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (domain.Book, error) {
	b, err := r.d.FindByID(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	return r.toDomain(b), nil
}

// FindBySN 详情页热点读, 先走缓存再回源
func (r *bookRepository) FindBySN(ctx context.Context, sn string) (domain.Book, error) {
	cached, err := r.c.GetBook(ctx, sn)
	if err == nil {
		return cached, nil
	}
	b, err := r.d.FindBySN(ctx, sn)
	if err != nil {
		return domain.Book{}, err
	}
	res := r.toDomain(b)
	if err = r.c.SetBook(ctx, res); err != nil {
		r.logger.Error("缓存图书失败",
			elog.FieldErr(err),
			elog.String("sn", sn))
	}
	return res, nil
}

func (r *bookRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Book, error) {
	bs, err := r.d.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.Book) domain.Book {
		return r.toDomain(src)
	}), nil
}

func (r *bookRepository) List(ctx context.Context, offset, limit int, category, keyword string) ([]domain.Book, error) {
	bs, err := r.d.List(ctx, offset, limit, category, keyword)
	if err != nil {
		return nil, err
	}
	return slice.Map(bs, func(idx int, src dao.Book) domain.Book {
		return r.toDomain(src)
	}), nil
}

func (r *bookRepository) Total(ctx context.Context, category, keyword string) (int64, error) {
	return r.d.Count(ctx, category, keyword)
}

func (r *bookRepository) DecrStock(ctx context.Context, id int64, quantity int64) error {
	return r.d.DecrStock(ctx, id, quantity)
}

func (r *bookRepository) IncrStock(ctx context.Context, id int64, quantity int64) error {
	return r.d.IncrStock(ctx, id, quantity)
}

// 库存增减不主动驱逐, 详情页库存靠过期兜底, 下单前校验总是回源数据库
func (r *bookRepository) evict(ctx context.Context, sn string) {
	if err := r.c.DelBook(ctx, sn); err != nil {
		r.logger.Error("清理图书缓存失败",
			elog.FieldErr(err),
			elog.String("sn", sn))
	}
}

func (r *bookRepository) toEntity(b domain.Book) dao.Book {
	return dao.Book{
		Id:              b.ID,
		SN:              b.SN,
		Title:           b.Title,
		AuthorName:      b.AuthorName,
		Category:        b.Category,
		Description:     b.Description,
		CoverURL:        b.CoverURL,
		Price:           b.Price,
		DiscountPercent: b.DiscountPercent,
		Stock:           b.Stock,
		Status:          b.Status.ToInt64(),
	}
}

func (r *bookRepository) toDomain(b dao.Book) domain.Book {
	return domain.Book{
		ID:              b.Id,
		SN:              b.SN,
		Title:           b.Title,
		AuthorName:      b.AuthorName,
		Category:        b.Category,
		Description:     b.Description,
		CoverURL:        b.CoverURL,
		Price:           b.Price,
		DiscountPercent: b.DiscountPercent,
		Stock:           b.Stock,
		Status:          domain.BookStatus(b.Status),
		Ctime:           b.Ctime,
		Utime:           b.Utime,
	}
}
