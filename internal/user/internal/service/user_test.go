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
	"testing"

	"github.com/ecodeclub/booknest/internal/user/internal/domain"
	"github.com/ecodeclub/booknest/internal/user/internal/repository"
	usermocks "github.com/ecodeclub/booknest/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("注册成功密码已加密", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := usermocks.NewMockUserRepository(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.NotEqual(t, "plain-password", u.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("plain-password")))
				assert.NotEmpty(t, u.SN)
				return int64(5), nil
			})

		svc := NewUserService(repo)
		u, err := svc.Register(context.Background(), "tester@example.com", "plain-password")
		require.NoError(t, err)
		assert.Equal(t, int64(5), u.Id)
		assert.Empty(t, u.Password)
	})

	t.Run("重复邮箱", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := usermocks.NewMockUserRepository(ctrl)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrUserDuplicate)

		svc := NewUserService(repo)
		_, err := svc.Register(context.Background(), "tester@example.com", "plain-password")
		assert.ErrorIs(t, err, ErrUserDuplicate)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("登录成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := usermocks.NewMockUserRepository(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), "tester@example.com").
			Return(domain.User{Id: 5, Email: "tester@example.com", Password: string(hash)}, nil)

		svc := NewUserService(repo)
		u, lerr := svc.Login(context.Background(), "tester@example.com", "right-password")
		require.NoError(t, lerr)
		assert.Equal(t, int64(5), u.Id)
		assert.Empty(t, u.Password)
	})

	t.Run("密码错误", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := usermocks.NewMockUserRepository(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), "tester@example.com").
			Return(domain.User{Id: 5, Password: string(hash)}, nil)

		svc := NewUserService(repo)
		_, lerr := svc.Login(context.Background(), "tester@example.com", "wrong-password")
		assert.ErrorIs(t, lerr, ErrInvalidCredentials)
	})

	t.Run("未注册用户不泄露信息", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := usermocks.NewMockUserRepository(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), "ghost@example.com").
			Return(domain.User{}, repository.ErrUserNotFound)

		svc := NewUserService(repo)
		_, lerr := svc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, lerr, ErrInvalidCredentials)
	})
}
