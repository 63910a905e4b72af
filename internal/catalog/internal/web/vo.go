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

package web

// ListBooksReq 分页浏览图书
type ListBooksReq struct {
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
	Category string `json:"category,omitempty"`
	Keyword  string `json:"keyword,omitempty"`
}

type ListBooksResp struct {
	Total int64  `json:"total,omitempty"`
	Books []Book `json:"books,omitempty"`
}

// BookDetailReq 获取图书详情
type BookDetailReq struct {
	SN string `json:"sn"`
}

type BookDetailResp struct {
	Book Book `json:"book"`
}

type Book struct {
	SN              string `json:"sn"`
	Title           string `json:"title"`
	AuthorName      string `json:"authorName"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	CoverURL        string `json:"coverURL"`
	Price           int64  `json:"price"`
	DiscountPercent int64  `json:"discountPercent"`
	Stock           int64  `json:"stock"`
}

// SaveBookReq 管理端创建/更新图书
type SaveBookReq struct {
	ID              int64  `json:"id,omitempty"`
	Title           string `json:"title"`
	AuthorName      string `json:"authorName"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	CoverURL        string `json:"coverURL"`
	Price           int64  `json:"price"`
	DiscountPercent int64  `json:"discountPercent"`
	Stock           int64  `json:"stock"`
}

type SaveBookResp struct {
	ID int64 `json:"id"`
}

// UpdateBookStatusReq 上架/下架
type UpdateBookStatusReq struct {
	ID int64 `json:"id"`
}

// RestockReq 管理端补充库存
type RestockReq struct {
	ID       int64 `json:"id"`
	Quantity int64 `json:"quantity"`
}
