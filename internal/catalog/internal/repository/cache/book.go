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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/ecache"
)

const bookExpiration = 30 * time.Minute

var ErrBookNotCached = errors.New("图书不在缓存中")

// BookCache 详情页热点图书缓存, 键为图书 SN
type BookCache interface {
	SetBook(ctx context.Context, b domain.Book) error
	GetBook(ctx context.Context, sn string) (domain.Book, error)
	DelBook(ctx context.Context, sn string) error
}

func NewBookECache(ec ecache.Cache) BookCache {
	return &bookCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "book:",
		},
	}
}

type bookCache struct {
	ec ecache.Cache
}

func (c *bookCache) SetBook(ctx context.Context, b domain.Book) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("序列化图书失败: %w", err)
	}
	return c.ec.Set(ctx, c.bookKey(b.SN), string(data), bookExpiration)
}

func (c *bookCache) GetBook(ctx context.Context, sn string) (domain.Book, error) {
	val := c.ec.Get(ctx, c.bookKey(sn))
	if val.KeyNotFound() {
		return domain.Book{}, ErrBookNotCached
	}
	if val.Err != nil {
		return domain.Book{}, fmt.Errorf("查询图书缓存出错: %w", val.Err)
	}
	var b domain.Book
	if err := json.Unmarshal([]byte(val.Val.(string)), &b); err != nil {
		return domain.Book{}, fmt.Errorf("反序列化图书失败: %w", err)
	}
	return b, nil
}

func (c *bookCache) DelBook(ctx context.Context, sn string) error {
	_, err := c.ec.Delete(ctx, c.bookKey(sn))
	return err
}

func (c *bookCache) bookKey(sn string) string {
	return fmt.Sprintf("detail:%s", sn)
}
