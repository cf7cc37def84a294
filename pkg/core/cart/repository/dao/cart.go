package dao

import (
	"context"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/cart/model"
)

type CartRepository interface {
	// Add 同一 (user, book) 已存在时累加数量，否则插入新行
	Add(ctx context.Context, userID, bookID uint, quantity int) (model.CartItem, error)
	ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]model.CartItem, int64, error)
	Get(ctx context.Context, id uint) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, id uint, quantity *int) (model.CartItem, error)
	Delete(ctx context.Context, id uint) error
	ClearUser(ctx context.Context, userID uint) (int64, error)
}
