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
	"errors"

	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/dao"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrStockNotEnough 下单数量超过当前库存
	ErrStockNotEnough = dao.ErrStockNotEnough
)

//go:generate mockgen -source=./service.go -package=catalogmocks -destination=../../mocks/catalog.mock.go Service
type Service interface {
	FindBookBySN(ctx context.Context, sn string) (domain.Book, error)
	FindBookByID(ctx context.Context, id int64) (domain.Book, error)
	FindBooksByIDs(ctx context.Context, ids []int64) ([]domain.Book, error)
	ListBooks(ctx context.Context, offset, limit int, category, keyword string) ([]domain.Book, int64, error)
	// DecrStock 原子扣减库存, 库存不足返回 ErrStockNotEnough
	DecrStock(ctx context.Context, bookID int64, quantity int64) error
	IncrStock(ctx context.Context, bookID int64, quantity int64) error

	// 管理端

	SaveBook(ctx context.Context, b domain.Book) (int64, error)
	PublishBook(ctx context.Context, id int64) error
	UnpublishBook(ctx context.Context, id int64) error
}

func NewService(repo repository.BookRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.BookRepository
}

func (s *service) FindBookBySN(ctx context.Context, sn string) (domain.Book, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *service) FindBookByID(ctx context.Context, id int64) (domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindBooksByIDs(ctx context.Context, ids []int64) ([]domain.Book, error) {
	return s.repo.FindByIDs(ctx, ids)
}

func (s *service) ListBooks(ctx context.Context, offset, limit int, category, keyword string) ([]domain.Book, int64, error) {
	var (
		eg    errgroup.Group
		bs    []domain.Book
		total int64
	)
	eg.Go(func() error {
		var err error
		bs, err = s.repo.List(ctx, offset, limit, category, keyword)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx, category, keyword)
		return err
	})
	return bs, total, eg.Wait()
}

func (s *service) DecrStock(ctx context.Context, bookID int64, quantity int64) error {
	if quantity < 1 {
		return errors.New("扣减数量非法")
	}
	return s.repo.DecrStock(ctx, bookID, quantity)
}

func (s *service) IncrStock(ctx context.Context, bookID int64, quantity int64) error {
	if quantity < 1 {
		return errors.New("补充数量非法")
	}
	return s.repo.IncrStock(ctx, bookID, quantity)
}

func (s *service) SaveBook(ctx context.Context, b domain.Book) (int64, error) {
	if b.ID > 0 {
		return b.ID, s.repo.Update(ctx, b)
	}
	return s.repo.Create(ctx, b)
}

func (s *service) PublishBook(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOnShelf)
}

func (s *service) UnpublishBook(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusOffShelf)
}
