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

	"github.com/ecodeclub/booknest/internal/cart/internal/domain"
	"github.com/ecodeclub/booknest/internal/cart/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type CartRepository interface {
	FindItemsByUID(ctx context.Context, uid int64) ([]domain.CartItem, error)
	AddQuantity(ctx context.Context, uid, bookID, quantity int64) error
	UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error
	RemoveItem(ctx context.Context, uid, bookID int64) error
	Clear(ctx context.Context, uid int64) error
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{d: d}
}

type cartRepository struct {
	d dao.CartDAO
}

func (r *cartRepository) FindItemsByUID(ctx context.Context, uid int64) ([]domain.CartItem, error) {
	items, err := r.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(items, func(idx int, src dao.CartItem) domain.CartItem {
		return domain.CartItem{
			BookID:   src.BookId,
			Quantity: src.Quantity,
		}
	}), nil
}

func (r *cartRepository) AddQuantity(ctx context.Context, uid, bookID, quantity int64) error {
	return r.d.AddQuantity(ctx, uid, bookID, quantity)
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, uid, bookID, quantity int64) error {
	return r.d.UpdateQuantity(ctx, uid, bookID, quantity)
}

func (r *cartRepository) RemoveItem(ctx context.Context, uid, bookID int64) error {
	return r.d.Delete(ctx, uid, bookID)
}

func (r *cartRepository) Clear(ctx context.Context, uid int64) error {
	return r.d.DeleteByUID(ctx, uid)
}
