package dao

import (
	"context"

	"gorm.io/gorm"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/book/model"
)

const resourceBook = "Book"

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// Create ISBN 重复时返回 ErrConflict
func (r *GormBookRepository) Create(ctx context.Context, book *model.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return apperrors.WrapGormError(err, resourceBook)
	}
	return nil
}

func (r *GormBookRepository) filtered(ctx context.Context, filter model.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Book{})
	q = pagination.ContainsFold(q, "title", filter.Title)
	q = pagination.ContainsFold(q, "author", filter.Author)
	return q
}

// List total 为分页前的过滤总数
func (r *GormBookRepository) List(ctx context.Context, filter model.Filter, page pagination.Page) ([]model.Book, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceBook)
	}

	books := make([]model.Book, 0, page.Limit)
	err := r.filtered(ctx, filter).
		Scopes(page.Scope).
		Order("id ASC").
		Find(&books).Error
	if err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceBook)
	}
	return books, total, nil
}

func (r *GormBookRepository) Get(ctx context.Context, id uint) (model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return model.Book{}, apperrors.WrapGormError(err, resourceBook)
	}
	return book, nil
}

// Update 只写入 patch 中出现的字段，空 patch 等同于 Get
func (r *GormBookRepository) Update(ctx context.Context, id uint, patch model.BookPatch) (model.Book, error) {
	var book model.Book
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&book).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&book, id).Error
	})
	if err != nil {
		return model.Book{}, apperrors.WrapGormError(err, resourceBook)
	}
	return book, nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Book{}, id)
	if res.Error != nil {
		return apperrors.WrapGormError(res.Error, resourceBook)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound(resourceBook)
	}
	return nil
}
