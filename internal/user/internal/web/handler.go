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
	"strconv"

	"github.com/ecodeclub/booknest/internal/user/internal/domain"
	"github.com/ecodeclub/booknest/internal/user/internal/errs"
	"github.com/ecodeclub/booknest/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.userSvc.Register(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserDuplicate) {
			return ginx.Result{Code: errs.DuplicateEmail.Code, Msg: errs.DuplicateEmail.Msg}, err
		}
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return ginx.Result{Code: errs.InvalidCredentials.Code, Msg: errs.InvalidCredentials.Msg}, err
		}
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		// 管理端接口的权限标记位
		SetJwtData(map[string]string{
			"admin": strconv.FormatBool(u.Admin),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       u.Id,
			SN:       u.SN,
			Email:    u.Email,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			IsAdmin:  u.Admin,
		},
	}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return ginx.Result{}, err
	}
	return ginx.Result{
		Data: Profile{
			Id:       u.Id,
			SN:       u.SN,
			Email:    u.Email,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			IsAdmin:  sess.Claims().Get("admin").StringOrDefault("") == "true",
		},
	}, nil
}

// Edit 用户编辑信息
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
