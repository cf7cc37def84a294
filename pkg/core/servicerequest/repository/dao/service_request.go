package dao

import (
	"context"

	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/servicerequest/model"
)

type ServiceRequestRepository interface {
	Create(ctx context.Context, req *model.ServiceRequest) error
	List(ctx context.Context, filter model.Filter, page pagination.Page) ([]model.ServiceRequest, int64, error)
	Get(ctx context.Context, id uint) (model.ServiceRequest, error)
	Update(ctx context.Context, id uint, patch model.ServiceRequestPatch) (model.ServiceRequest, error)
	Delete(ctx context.Context, id uint) error
}
