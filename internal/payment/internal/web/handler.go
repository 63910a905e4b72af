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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/booknest/internal/order"
	"github.com/ecodeclub/booknest/internal/payment/internal/errs"
	"github.com/ecodeclub/booknest/internal/payment/internal/service"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	orderSvc order.Service
	cache    ecache.Cache
}

func NewHandler(svc service.Service, orderSvc order.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, orderSvc: orderSvc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment")
	g.POST("/create-order", ginx.BS[CreateOrderReq](h.CreateOrderAndPayment))
	g.POST("/verify", ginx.BS[VerifyPaymentReq](h.VerifyPayment))
	g.POST("/failure", ginx.BS[PaymentFailureReq](h.HandleFailure))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrderAndPayment 基于购物车创建订单并在网关下单
func (h *Handler) CreateOrderAndPayment(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	uid := sess.Claims().Uid
	o, err := h.orderSvc.CreateFromCart(ctx.Request.Context(), uid, order.MethodGateway, order.Address{
		Recipient:  req.Address.Recipient,
		Line1:      req.Address.Line1,
		Line2:      req.Address.Line2,
		City:       req.Address.City,
		State:      req.Address.State,
		PostalCode: req.Address.PostalCode,
		Phone:      req.Address.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrCartEmpty):
			return ginx.Result{Code: errs.CartEmpty.Code, Msg: errs.CartEmpty.Msg}, err
		case errors.Is(err, order.ErrStockNotEnough):
			return ginx.Result{Code: errs.StockNotEnough.Code, Msg: errs.StockNotEnough.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}

	intent, err := h.svc.CreatePaymentOrder(ctx.Request.Context(), uid, o.SN)
	if err != nil {
		if errors.Is(err, service.ErrGatewayUnavailable) {
			return ginx.Result{
				Code: errs.GatewayUnavailable.Code,
				Msg:  errs.GatewayUnavailable.Msg,
			}, err
		}
		return systemErrorResult, fmt.Errorf("创建支付失败: %w", err)
	}

	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN:        intent.OrderSN,
			PaymentSN:      intent.PaymentSN,
			GatewayOrderID: intent.GatewayOrderID,
			Amount:         intent.Amount,
			Currency:       intent.Currency,
			KeyID:          intent.KeyID,
		},
	}, nil
}

func (h *Handler) VerifyPayment(ctx *ginx.Context, req VerifyPaymentReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.VerifyPayment(ctx.Request.Context(), sess.Claims().Uid,
		req.GatewayOrderID, req.GatewayPaymentID, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidSignature):
			return ginx.Result{Code: errs.InvalidSignature.Code, Msg: errs.InvalidSignature.Msg}, err
		case errors.Is(err, service.ErrPaymentNotFound):
			return ginx.Result{Code: errs.PaymentNotFound.Code, Msg: errs.PaymentNotFound.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("确认支付失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) HandleFailure(ctx *ginx.Context, req PaymentFailureReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.HandleFailure(ctx.Request.Context(), sess.Claims().Uid, req.GatewayOrderID)
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			return ginx.Result{Code: errs.PaymentNotFound.Code, Msg: errs.PaymentNotFound.Msg}, err
		}
		return systemErrorResult, fmt.Errorf("标记支付失败出错: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}

	key := h.createOrderRequestKey(requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) createOrderRequestKey(requestID string) string {
	return fmt.Sprintf("payment:create:%s", requestID)
}
