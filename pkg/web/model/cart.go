package model

import (
	"time"

	cartmodel "book-hub/pkg/core/cart/model"
)

type (
	CartItemCreate struct {
		UserID   uint `json:"user_id,required"`
		BookID   uint `json:"book_id,required"`
		Quantity *int `json:"quantity"`
	}

	CartItemUpdate struct {
		ID       uint `path:"id,required"`
		Quantity *int `json:"quantity"`
	}

	CartListQuery struct {
		UserID uint `path:"user_id,required"`
		Skip   int  `query:"skip" default:"0" vd:"$>=0"`
		Limit  int  `query:"limit" default:"50" vd:"$>=0&&$<=100"`
	}

	UserPath struct {
		UserID uint `path:"user_id,required"`
	}

	CartItemOut struct {
		ID        uint      `json:"id"`
		UserID    uint      `json:"user_id"`
		BookID    uint      `json:"book_id"`
		Quantity  int       `json:"quantity"`
		CreatedAt time.Time `json:"created_at"`
	}
)

// QuantityOrDefault 未提供时为 1
func (r CartItemCreate) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

func NewCartItemOut(i cartmodel.CartItem) CartItemOut {
	return CartItemOut{
		ID:        i.ID,
		UserID:    i.UserID,
		BookID:    i.BookID,
		Quantity:  i.Quantity,
		CreatedAt: i.CreatedAt,
	}
}
