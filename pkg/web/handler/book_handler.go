package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"book-hub/pkg/common/pagination"
	bookmodel "book-hub/pkg/core/book/model"
	"book-hub/pkg/core/book/service"
	"book-hub/pkg/web/model"
)

type BookHandler struct {
	books        *service.BookService
	hideInternal bool
}

func NewBookHandler(books *service.BookService, hideInternal bool) *BookHandler {
	return &BookHandler{books: books, hideInternal: hideInternal}
}

func (h *BookHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.BookCreate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	book, err := h.books.Create(ctx, req.ToModel())
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusCreated, model.NewBookOut(book))
}

func (h *BookHandler) List(ctx context.Context, c *app.RequestContext) {
	var req model.BookListQuery
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	res, err := h.books.List(ctx, bookmodel.Filter{Title: req.Title, Author: req.Author}, req.Skip, req.Limit)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(res, model.NewBookOut))
}

func (h *BookHandler) Get(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	book, err := h.books.Get(ctx, req.ID)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewBookOut(book))
}

func (h *BookHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req model.BookUpdate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	book, err := h.books.Update(ctx, req.ID, req.ToPatch())
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewBookOut(book))
}

func (h *BookHandler) Delete(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.books.Delete(ctx, req.ID); err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.Message{Message: "Book deleted successfully"})
}
