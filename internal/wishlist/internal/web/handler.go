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
	"fmt"

	"github.com/ecodeclub/booknest/internal/catalog"
	"github.com/ecodeclub/booknest/internal/wishlist/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

var systemErrorResult = ginx.Result{
	Code: 504001,
	Msg:  "系统错误",
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/wishlist")
	g.POST("", ginx.S(h.List))
	g.POST("/add", ginx.BS[ItemReq](h.Add))
	g.POST("/remove", ginx.BS[ItemReq](h.Remove))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

type ItemReq struct {
	BookID int64 `json:"bookID"`
}

type ListResp struct {
	Books []Book `json:"books"`
}

type Book struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	Title    string `json:"title"`
	CoverURL string `json:"coverURL"`
	Price    int64  `json:"price"`
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	books, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询收藏失败: %w", err)
	}
	return ginx.Result{
		Data: ListResp{
			Books: slice.Map(books, func(idx int, src catalog.Book) Book {
				return Book{
					ID:       src.ID,
					SN:       src.SN,
					Title:    src.Title,
					CoverURL: src.CoverURL,
					Price:    src.Price,
				}
			}),
		},
	}, nil
}

func (h *Handler) Add(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Add(ctx.Request.Context(), sess.Claims().Uid, req.BookID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Remove(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Remove(ctx.Request.Context(), sess.Claims().Uid, req.BookID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
