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

package domain

type BookStatus int64

func (s BookStatus) ToInt64() int64 {
	return int64(s)
}

const (
	StatusOffShelf BookStatus = iota // 下架
	StatusOnShelf                    // 上架
)

type Book struct {
	ID          int64
	SN          string
	Title       string
	AuthorName  string
	Category    string
	Description string
	CoverURL    string
	// Price 单位为分, 999 表示 9.99 元
	Price           int64
	DiscountPercent int64
	Stock           int64
	Status          BookStatus
	Ctime           int64
	Utime           int64
}
