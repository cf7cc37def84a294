package dao

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/core/user/model"
)

const resourceUser = "User"

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) QueryByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return model.User{}, apperrors.WrapGormError(err, resourceUser)
	}
	return user, nil
}

func (r *GormUserRepository) IsEmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", apperrors.WrapGormError(err, resourceUser))
	}
	return count > 0, nil
}

// CreateUser 依赖 email 唯一索引兜底并发注册
func (r *GormUserRepository) CreateUser(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return apperrors.WrapGormError(err, resourceUser)
	}
	return nil
}
