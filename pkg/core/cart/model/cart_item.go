package model

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 关联用户与图书；user_id/book_id 不做外键约束
type CartItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book,priority:1"`
	BookID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_book,priority:2"`
	Quantity  int       `gorm:"not null"` // 缺省值 1 由请求层补齐
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&CartItem{})
}
