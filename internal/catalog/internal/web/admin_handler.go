package web

import (
	"github.com/ecodeclub/booknest/internal/catalog/internal/domain"
	"github.com/ecodeclub/booknest/internal/catalog/internal/service"
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
	g := server.Group("/books")
	g.POST("/save", ginx.B[SaveBookReq](h.Save))
	g.POST("/publish", ginx.B[UpdateBookStatusReq](h.Publish))
	g.POST("/unpublish", ginx.B[UpdateBookStatusReq](h.Unpublish))
	g.POST("/restock", ginx.B[RestockReq](h.Restock))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveBookReq) (ginx.Result, error) {
	id, err := h.svc.SaveBook(ctx.Request.Context(), domain.Book{
		ID:              req.ID,
		Title:           req.Title,
		AuthorName:      req.AuthorName,
		Category:        req.Category,
		Description:     req.Description,
		CoverURL:        req.CoverURL,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		Stock:           req.Stock,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SaveBookResp{ID: id}}, nil
}

func (h *AdminHandler) Publish(ctx *ginx.Context, req UpdateBookStatusReq) (ginx.Result, error) {
	err := h.svc.PublishBook(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Unpublish(ctx *ginx.Context, req UpdateBookStatusReq) (ginx.Result, error) {
	err := h.svc.UnpublishBook(ctx.Request.Context(), req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Restock(ctx *ginx.Context, req RestockReq) (ginx.Result, error) {
	err := h.svc.IncrStock(ctx.Request.Context(), req.ID, req.Quantity)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
