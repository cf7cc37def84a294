package dao

import (
	"context"

	"gorm.io/gorm"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/servicerequest/model"
)

const resourceServiceRequest = "Service request"

type GormServiceRequestRepository struct {
	db *gorm.DB
}

func NewGormServiceRequestRepository(db *gorm.DB) *GormServiceRequestRepository {
	return &GormServiceRequestRepository{db: db}
}

func (r *GormServiceRequestRepository) Create(ctx context.Context, req *model.ServiceRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return apperrors.WrapGormError(err, resourceServiceRequest)
	}
	return nil
}

// filtered 条件之间为 AND；UserID 为 0、Status 为空时不过滤
func (r *GormServiceRequestRepository) filtered(ctx context.Context, filter model.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.ServiceRequest{})
	if filter.UserID != 0 {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	return pagination.ContainsFold(q, "title", filter.Title)
}

func (r *GormServiceRequestRepository) List(ctx context.Context, filter model.Filter, page pagination.Page) ([]model.ServiceRequest, int64, error) {
	var total int64
	if err := r.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceServiceRequest)
	}

	reqs := make([]model.ServiceRequest, 0, page.Limit)
	err := r.filtered(ctx, filter).
		Scopes(page.Scope).
		Order("id ASC").
		Find(&reqs).Error
	if err != nil {
		return nil, 0, apperrors.WrapGormError(err, resourceServiceRequest)
	}
	return reqs, total, nil
}

func (r *GormServiceRequestRepository) Get(ctx context.Context, id uint) (model.ServiceRequest, error) {
	var req model.ServiceRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return model.ServiceRequest{}, apperrors.WrapGormError(err, resourceServiceRequest)
	}
	return req, nil
}

func (r *GormServiceRequestRepository) Update(ctx context.Context, id uint, patch model.ServiceRequestPatch) (model.ServiceRequest, error) {
	var req model.ServiceRequest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, id).Error; err != nil {
			return err
		}
		cols := patch.Columns()
		if len(cols) == 0 {
			return nil
		}
		if err := tx.Model(&req).Updates(cols).Error; err != nil {
			return err
		}
		return tx.First(&req, id).Error
	})
	if err != nil {
		return model.ServiceRequest{}, apperrors.WrapGormError(err, resourceServiceRequest)
	}
	return req, nil
}

func (r *GormServiceRequestRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.ServiceRequest{}, id)
	if res.Error != nil {
		return apperrors.WrapGormError(res.Error, resourceServiceRequest)
	}
	if res.RowsAffected == 0 {
		return apperrors.NewNotFound(resourceServiceRequest)
	}
	return nil
}
