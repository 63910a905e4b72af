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

	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/orders")
	g.POST("/list", ginx.B[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/status", ginx.B[UpdateOrderStatusReq](h.UpdateOrderStatus))
}

func (h *AdminHandler) ListOrders(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询全量订单失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.SN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

func (h *AdminHandler) UpdateOrderStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateOrderStatus(ctx.Request.Context(), req.BuyerID, req.SN, domain.OrderStatus(req.Status))
	if err != nil {
		return systemErrorResult, fmt.Errorf("更新订单履约状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
