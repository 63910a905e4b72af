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
	"sync"
	"testing"

	"github.com/ecodeclub/booknest/internal/catalog/internal/repository/dao"
	testioc "github.com/ecodeclub/booknest/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBookDAO(t *testing.T) {
	suite.Run(t, new(BookDAOTestSuite))
}

type BookDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.BookDAO
}

func (s *BookDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewBookGORMDAO(s.db)
}

func (s *BookDAOTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `books`").Error
	require.NoError(s.T(), err)
}

func (s *BookDAOTestSuite) newBook(sn string, stock int64) int64 {
	t := s.T()
	id, err := s.dao.Create(context.Background(), dao.Book{
		SN:         sn,
		Title:      "深入理解并发扣减",
		AuthorName: "测试作者",
		Category:   "计算机",
		Price:      9900,
		Stock:      stock,
		Status:     dao.StatusOnShelf,
	})
	require.NoError(t, err)
	return id
}

func (s *BookDAOTestSuite) TestDecrStock() {
	t := s.T()
	id := s.newBook("book-decr-1", 3)

	err := s.dao.DecrStock(context.Background(), id, 2)
	require.NoError(t, err)

	// 剩余 1, 再扣 2 不应命中任何行
	err = s.dao.DecrStock(context.Background(), id, 2)
	assert.ErrorIs(t, err, dao.ErrStockNotEnough)

	book, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), book.Stock)
}

func (s *BookDAOTestSuite) TestDecrStockConcurrent() {
	t := s.T()
	id := s.newBook("book-decr-2", 1)

	var wg sync.WaitGroup
	errCh := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errCh <- s.dao.DecrStock(context.Background(), id, 1)
		}()
	}
	wg.Wait()
	close(errCh)

	var succeeded, lost int
	for err := range errCh {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, dao.ErrStockNotEnough)
			lost++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, lost)

	book, err := s.dao.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), book.Stock)
}
