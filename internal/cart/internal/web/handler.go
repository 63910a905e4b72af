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

	"github.com/ecodeclub/booknest/internal/cart/internal/domain"
	"github.com/ecodeclub/booknest/internal/cart/internal/errs"
	"github.com/ecodeclub/booknest/internal/cart/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/cart")
	g.POST("", ginx.S(h.GetCart))
	g.POST("/add", ginx.BS[AddItemReq](h.AddItem))
	g.POST("/update", ginx.BS[UpdateQuantityReq](h.UpdateQuantity))
	g.POST("/remove", ginx.BS[RemoveItemReq](h.RemoveItem))
	g.POST("/clear", ginx.S(h.Clear))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) GetCart(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cart, err := h.svc.GetCart(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询购物车失败: %w", err)
	}
	return ginx.Result{
		Data: CartResp{
			Items: slice.Map(cart.Items, func(idx int, src domain.CartItem) CartItem {
				return CartItem{
					BookID:          src.BookID,
					BookSN:          src.BookSN,
					Title:           src.Title,
					CoverURL:        src.CoverURL,
					Price:           src.Price,
					DiscountPercent: src.DiscountPercent,
					Stock:           src.Stock,
					Quantity:        src.Quantity,
				}
			}),
		},
	}, nil
}

func (h *Handler) AddItem(ctx *ginx.Context, req AddItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AddItem(ctx.Request.Context(), sess.Claims().Uid, req.BookID, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrBookUnavailable) {
			return ginx.Result{
				Code: errs.BookUnavailable.Code,
				Msg:  errs.BookUnavailable.Msg,
			}, err
		}
		return systemErrorResult, fmt.Errorf("加入购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) UpdateQuantity(ctx *ginx.Context, req UpdateQuantityReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateQuantity(ctx.Request.Context(), sess.Claims().Uid, req.BookID, req.Quantity)
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req RemoveItemReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RemoveItem(ctx.Request.Context(), sess.Claims().Uid, req.BookID)
	if err != nil {
		return systemErrorResult, fmt.Errorf("移除购物车行失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := h.svc.Clear(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("清空购物车失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
