package dao

import (
	"context"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/book/model"
)

type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	List(ctx context.Context, filter model.Filter, page pagination.Page) ([]model.Book, int64, error)
	Get(ctx context.Context, id uint) (model.Book, error)
	Update(ctx context.Context, id uint, patch model.BookPatch) (model.Book, error)
	Delete(ctx context.Context, id uint) error
}
