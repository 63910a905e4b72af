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

//go:build e2e

package integration

import (
	"context"
	"testing"

	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/dao"
	testioc "github.com/ecodeclub/booknest/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBookRepository(t *testing.T) {
	suite.Run(t, new(BookRepositoryTestSuite))
}

type BookRepositoryTestSuite struct {
	suite.Suite
	db   *egorm.Component
	dao  dao.BookDAO
	repo repository.BookRepository
}

func (s *BookRepositoryTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewBookGORMDAO(s.db)
	s.repo = repository.NewBookRepository(s.dao, cache.NewBookECache(testioc.InitCache()))
}

func (s *BookRepositoryTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `books`").Error
	require.NoError(s.T(), err)
}

func (s *BookRepositoryTestSuite) TestFindBySNCached() {
	t := s.T()
	const sn = "book-cache-1"
	id, err := s.repo.Create(context.Background(), domain.Book{
		SN:         sn,
		Title:      "缓存前的书名",
		AuthorName: "测试作者",
		Category:   "计算机",
		Price:      6600,
		Stock:      5,
		Status:     domain.StatusOnShelf,
	})
	require.NoError(t, err)

	// 第一次读填充缓存
	got, err := s.repo.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Equal(t, "缓存前的书名", got.Title)

	// 绕过仓储直改数据库, 命中缓存时读到的仍是旧书名
	err = s.dao.Update(context.Background(), dao.Book{Id: id, Title: "直改后的书名"})
	require.NoError(t, err)
	got, err = s.repo.FindBySN(context.Background(), sn)
	require.NoError(t, err)
	assert.Equal(t, "缓存前的书名", got.Title)

	// 下架走仓储会驱逐缓存, 详情页不再返回该书
	err = s.repo.UpdateStatus(context.Background(), id, domain.StatusOffShelf)
	require.NoError(t, err)
	_, err = s.repo.FindBySN(context.Background(), sn)
	assert.Error(t, err)
}
