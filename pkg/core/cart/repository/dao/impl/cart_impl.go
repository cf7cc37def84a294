package dao

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/cart/model"
)

const resourceCartItem = "Cart item"

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add 在事务内锁定已有行后累加；并发插入撞上 idx_cart_user_book 时重试一次，
// 第二次必然走累加分支
func (r *GormCartRepository) Add(ctx context.Context, userID, bookID uint, quantity int) (model.CartItem, error) {
	item, err := r.mergeOrInsert(ctx, userID, bookID, quantity)
	if apperrors.IsDuplicateError(err) {
		hlog.CtxDebugf(ctx, "cart insert raced for user=%d book=%d, retrying", userID, bookID)
		item, err = r.mergeOrInsert(ctx, userID, bookID, quantity)
	}
	if err != nil {
		return model.CartItem{}, apperrors.WrapGormError(err, resourceCartItem)
	}
	return item, nil
}

func (r *GormCartRepository) mergeOrInsert(ctx context.Context, userID, bookID uint, quantity int) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND book_id = ?", userID, bookID).
			First(&item).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = model.CartItem{UserID: userID, BookID: bookID, Quantity: quantity}
			return tx.Create(&item).Error
		}
		if err != nil {
			return err
		}

		err = tx.Model(&item).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity)).Error
		if err != nil {
			return err
		}
		return tx.First(&item, item.ID).Error
	})
	return item, err
}

func (r *GormCartRepository) ListByUser(ctx context.Context, userID uint, page pagination.Page) ([]model.CartItem, int64, error) {
	base := r.db.WithContext(ctx).Model(&model.CartItem{}).Where("user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceCartItem)
	}

	items := make([]model.CartItem, 0, page.Limit)
	err := base.Session(&gorm.Session{}).
		Scopes(page.Scope).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceCartItem)
	}
	return items, total, nil
}

func (r *GormCartRepository) Get(ctx context.Context, id uint) (model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return model.CartItem{}, apperrors.WrapGormError(err, resourceCartItem)
	}
	return item, nil
}

// UpdateQuantity quantity 为 nil 时只确认记录存在
func (r *GormCartRepository) UpdateQuantity(ctx context.Context, id uint, quantity *int) (model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if quantity == nil {
			return nil
		}
		if err := tx.Model(&item).Update("quantity", *quantity).Error; err != nil {
			return err
		}
		item.Quantity = *quantity
		return nil
	})
	if err != nil {
		return model.CartItem{}, apperrors.WrapGormError(err, resourceCartItem)
	}
	return item, nil
}

func (r *GormCartRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, id)
	if res.Error != nil {
		return apperrors.WrapGormError(res.Error, resourceCartItem)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound(resourceCartItem)
	}
	return nil
}

// ClearUser 返回删除的行数，空购物车返回 0
func (r *GormCartRepository) ClearUser(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{})
	if res.Error != nil {
		return 0, apperrors.WrapGormError(res.Error, resourceCartItem)
	}
	return res.RowsAffected, nil
}
