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

	"github.com/ecodeclub/booknest/internal/user/internal/domain"
	"github.com/ecodeclub/booknest/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/repository.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	Update(ctx context.Context, u domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
}

func NewCachedUserRepository(d dao.UserDAO) UserRepository {
	return &userRepository{dao: d}
}

type userRepository struct {
	dao dao.UserDAO
}

func (r *userRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(u))
}

func (r *userRepository) Update(ctx context.Context, u domain.User) error {
	return r.dao.UpdateNonZeroFields(ctx, r.toEntity(u))
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return r.toDomain(u), nil
}

func (r *userRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Admin:    u.Admin,
	}
}

func (r *userRepository) toDomain(u dao.User) domain.User {
	return domain.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email,
		Password: u.Password,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Admin:    u.Admin,
	}
}
