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

	"github.com/ecodeclub/booknest/internal/cart"
	"github.com/ecodeclub/booknest/internal/order/internal/domain"
	"github.com/ecodeclub/booknest/internal/order/internal/errs"
	"github.com/ecodeclub/booknest/internal/order/internal/service"
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
	g := server.Group("/orders")
	g.POST("/preview", ginx.S(h.PreviewOrder))
	// 货到付款下单, 网关支付走 /payment/create-order
	g.POST("", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/status", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PreviewOrder(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	preview, err := h.svc.PreviewOrder(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			return ginx.Result{Code: errs.CartEmpty.Code, Msg: errs.CartEmpty.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("预览订单失败: %w", err)
	}
	return ginx.Result{
		Data: PreviewOrderResp{
			Items:        toOrderItemVOs(preview.Items),
			Subtotal:     preview.Subtotal,
			ShippingCost: preview.ShippingCost,
			Tax:          preview.Tax,
			Total:        preview.Total,
		},
	}, nil
}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.CreateFromCart(ctx.Request.Context(), sess.Claims().Uid,
		domain.MethodCOD, toAddressDomain(req.Address))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartEmpty):
			return ginx.Result{Code: errs.CartEmpty.Code, Msg: errs.CartEmpty.Msg}, err
		case errors.Is(err, service.ErrStockNotEnough):
			return ginx.Result{Code: errs.StockNotEnough.Code, Msg: errs.StockNotEnough.Msg}, err
		case errors.Is(err, service.ErrInvalidAddress):
			return ginx.Result{Code: errs.InvalidAddress.Code, Msg: errs.InvalidAddress.Msg}, err
		case errors.Is(err, cart.ErrBookUnavailable):
			return ginx.Result{Code: errs.StockNotEnough.Code, Msg: errs.StockNotEnough.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}
	return ginx.Result{
		Data: CreateOrderResp{SN: order.SN},
	}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrdersByUID(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单列表失败: %w", err)
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

func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{
		Data: toOrderVO(order),
	}, nil
}

func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.SN, sess.Claims().Uid)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("查询订单状态失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			SN:            order.SN,
			PaymentStatus: order.PaymentStatus.ToUint8(),
			Status:        order.Status.ToUint8(),
		},
	}, nil
}

func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.CancelOrder(ctx.Request.Context(), sess.Claims().Uid, req.SN)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotPending) {
			return ginx.Result{Code: errs.OrderNotCancelable.Code, Msg: errs.OrderNotCancelable.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:        order.SN,
		PaymentSN: order.PaymentSN,
		Items:     toOrderItemVOs(order.Items),
		Address: AddressVO{
			Recipient:  order.Address.Recipient,
			Line1:      order.Address.Line1,
			Line2:      order.Address.Line2,
			City:       order.Address.City,
			State:      order.Address.State,
			PostalCode: order.Address.PostalCode,
			Phone:      order.Address.Phone,
		},
		Subtotal:      order.Subtotal,
		ShippingCost:  order.ShippingCost,
		Tax:           order.Tax,
		Total:         order.Total,
		Method:        order.Method.ToUint8(),
		PaymentStatus: order.PaymentStatus.ToUint8(),
		Status:        order.Status.ToUint8(),
		Ctime:         order.Ctime,
	}
}

func toOrderItemVOs(items []domain.OrderItem) []OrderItem {
	return slice.Map(items, func(idx int, src domain.OrderItem) OrderItem {
		return OrderItem{
			BookSN:          src.BookSN,
			Title:           src.Title,
			CoverURL:        src.CoverURL,
			UnitPrice:       src.UnitPrice,
			DiscountPercent: src.DiscountPercent,
			RealPrice:       src.RealPrice,
			Quantity:        src.Quantity,
		}
	})
}

func toAddressDomain(a AddressVO) domain.Address {
	return domain.Address{
		Recipient:  a.Recipient,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Phone:      a.Phone,
	}
}
