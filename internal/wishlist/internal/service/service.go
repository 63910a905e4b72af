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

	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/wishlist/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

type Service interface {
	List(ctx context.Context, uid int64) ([]catalog.Book, error)
	Add(ctx context.Context, uid, bookID int64) error
	Remove(ctx context.Context, uid, bookID int64) error
}

func NewService(d dao.WishlistDAO, catalogSvc catalog.Service) Service {
	return &service{d: d, catalogSvc: catalogSvc}
}

type service struct {
	d          dao.WishlistDAO
	catalogSvc catalog.Service
}

func (s *service) List(ctx context.Context, uid int64) ([]catalog.Book, error) {
	items, err := s.d.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	ids := slice.Map(items, func(idx int, src dao.WishlistItem) int64 {
		return src.BookId
	})
	return s.catalogSvc.FindBooksByIDs(ctx, ids)
}

func (s *service) Add(ctx context.Context, uid, bookID int64) error {
	return s.d.Add(ctx, uid, bookID)
}

func (s *service) Remove(ctx context.Context, uid, bookID int64) error {
	return s.d.Delete(ctx, uid, bookID)
}
