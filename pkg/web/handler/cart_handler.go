package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/cart/service"
	"book-hub/pkg/web/model"
)

type CartHandler struct {
	cart         *service.CartService
	hideInternal bool
}

func NewCartHandler(cart *service.CartService, hideInternal bool) *CartHandler {
	return &CartHandler{cart: cart, hideInternal: hideInternal}
}

// Add 同一用户重复加入同一本书时累加数量
func (h *CartHandler) Add(ctx context.Context, c *app.RequestContext) {
	var req model.CartItemCreate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.cart.Add(ctx, req.UserID, req.BookID, req.QuantityOrDefault())
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusCreated, model.NewCartItemOut(item))
}

func (h *CartHandler) ListByUser(ctx context.Context, c *app.RequestContext) {
	var req model.CartListQuery
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.cart.ListByUser(ctx, req.UserID, req.Skip, req.Limit)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(res, model.NewCartItemOut))
}

func (h *CartHandler) Get(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.cart.Get(ctx, req.ID)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewCartItemOut(item))
}

func (h *CartHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req model.CartItemUpdate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.cart.Update(ctx, req.ID, req.Quantity)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewCartItemOut(item))
}

func (h *CartHandler) Delete(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.cart.Delete(ctx, req.ID); err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.Message{Message: "Cart item deleted successfully"})
}

func (h *CartHandler) Clear(ctx context.Context, c *app.RequestContext) {
	var req model.UserPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.cart.Clear(ctx, req.UserID); err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.Message{Message: "User cart cleared successfully"})
}
