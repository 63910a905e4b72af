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

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/booknest/internal/catalog/internal/errs"
	"github.com/ecodeclub/booknest/internal/catalog/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/books")
	g.POST("/list", ginx.B[ListBooksReq](h.ListBooks))
	g.POST("/detail", ginx.B[BookDetailReq](h.BookDetail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

// ListBooks 浏览上架图书, 支持分类和关键字过滤
func (h *Handler) ListBooks(ctx *ginx.Context, req ListBooksReq) (ginx.Result, error) {
	books, total, err := h.svc.ListBooks(ctx.Request.Context(), req.Offset, req.Limit, req.Category, req.Keyword)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询图书列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListBooksResp{
			Total: total,
			Books: slice.Map(books, func(idx int, src domain.Book) Book {
				return toBookVO(src)
			}),
		},
	}, nil
}

func (h *Handler) BookDetail(ctx *ginx.Context, req BookDetailReq) (ginx.Result, error) {
	book, err := h.svc.FindBookBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ginx.Result{
				Code: errs.BookNotFound.Code,
				Msg:  errs.BookNotFound.Msg,
			}, fmt.Errorf("图书未找到: %w", err)
		}
		return systemErrorResult, fmt.Errorf("查询图书详情失败: %w", err)
	}
	return ginx.Result{
		Data: BookDetailResp{Book: toBookVO(book)},
	}, nil
}

func toBookVO(b domain.Book) Book {
	return Book{
		SN:              b.SN,
		Title:           b.Title,
		AuthorName:      b.AuthorName,
		Category:        b.Category,
		Description:     b.Description,
		CoverURL:        b.CoverURL,
		Price:           b.Price,
		DiscountPercent: b.DiscountPercent,
		Stock:           b.Stock,
	}
}
