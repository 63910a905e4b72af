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
	"fmt"

	"github.com/ecodeclub/booknest/internal/cart/internal/domain"
	"github.com/ecodeclub/booknest/internal/cart/internal/repository"
	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrBookUnavailable = errors.New("图书不存在或已下架")
)

//go:generate mockgen -source=./service.go -package=cartmocks -destination=../../mocks/cart.mock.go Service
type Service interface {
	// GetCart 返回购物车行, 并携带实时的目录价格与库存
	GetCart(ctx context.Context, uid int64) (domain.Cart, error)
	AddItem(ctx context.Context, uid, bookID, quantity int64) error
	// UpdateQuantity quantity <= 0 时等价于删除该行
	UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error
	RemoveItem(ctx context.Context, uid, bookID int64) error
	Clear(ctx context.Context, uid int64) error
}

func NewService(repo repository.CartRepository, catalogSvc catalog.Service) Service {
	return &service{repo: repo, catalogSvc: catalogSvc}
}

type service struct {
	repo       repository.CartRepository
	catalogSvc catalog.Service
}

func (s *service) GetCart(ctx context.Context, uid int64) (domain.Cart, error) {
	items, err := s.repo.FindItemsByUID(ctx, uid)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("查询购物车失败: %w", err)
	}
	if len(items) == 0 {
		return domain.Cart{UID: uid}, nil
	}
	ids := slice.Map(items, func(idx int, src domain.CartItem) int64 {
		return src.BookID
	})
	books, err := s.catalogSvc.FindBooksByIDs(ctx, ids)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("查询购物车图书失败: %w", err)
	}
	bookMap := make(map[int64]catalog.Book, len(books))
	for _, b := range books {
		bookMap[b.ID] = b
	}
	res := domain.Cart{UID: uid, Items: make([]domain.CartItem, 0, len(items))}
	for _, item := range items {
		b, ok := bookMap[item.BookID]
		if !ok || b.Status != catalog.StatusOnShelf {
			// 已下架的图书仍留在行里, 前端据此提示用户移除
			res.Items = append(res.Items, item)
			continue
		}
		res.Items = append(res.Items, domain.CartItem{
			BookID:          b.ID,
			BookSN:          b.SN,
			Title:           b.Title,
			CoverURL:        b.CoverURL,
			Price:           b.Price,
			DiscountPercent: b.DiscountPercent,
			Stock:           b.Stock,
			Quantity:        item.Quantity,
		})
	}
	return res, nil
}

func (s *service) AddItem(ctx context.Context, uid, bookID, quantity int64) error {
	if quantity < 1 {
		return errors.New("加购数量非法")
	}
	b, err := s.catalogSvc.FindBookByID(ctx, bookID)
	if err != nil || b.Status != catalog.StatusOnShelf {
		return ErrBookUnavailable
	}
	return s.repo.AddQuantity(ctx, uid, bookID, quantity)
}

func (s *service) UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error {
	if quantity <= 0 {
		return s.repo.RemoveItem(ctx, uid, bookID)
	}
	return s.repo.UpdateQuantity(ctx, uid, bookID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, uid, bookID int64) error {
	return s.repo.RemoveItem(ctx, uid, bookID)
}

func (s *service) Clear(ctx context.Context, uid int64) error {
	return s.repo.Clear(ctx, uid)
}
