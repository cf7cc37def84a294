package service

import (
	"context"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/common/pagination"
	"book-hub/pkg/core/servicerequest/model"
	"book-hub/pkg/core/servicerequest/repository/dao"
)

type ServiceRequestService struct {
	repo dao.ServiceRequestRepository
}

func NewServiceRequestService(repo dao.ServiceRequestRepository) *ServiceRequestService {
	return &ServiceRequestService{repo: repo}
}

// Create 新申请的状态总是 pending
func (s *ServiceRequestService) Create(ctx context.Context, req model.ServiceRequest) (model.ServiceRequest, error) {
	req.ID = 0
	req.Status = model.StatusPending
	if err := s.repo.Create(ctx, &req); err != nil {
		return model.ServiceRequest{}, err
	}
	return req, nil
}

func (s *ServiceRequestService) List(ctx context.Context, filter model.Filter, skip, limit int) (pagination.Result[model.ServiceRequest], error) {
	page, err := pagination.New(skip, limit)
	if err != nil {
		return pagination.Result[model.ServiceRequest]{}, err
	}
	reqs, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return pagination.Result[model.ServiceRequest]{}, err
	}
	return pagination.Result[model.ServiceRequest]{Total: total, Items: reqs}, nil
}

func (s *ServiceRequestService) Get(ctx context.Context, id uint) (model.ServiceRequest, error) {
	return s.repo.Get(ctx, id)
}

func (s *ServiceRequestService) Update(ctx context.Context, id uint, patch model.ServiceRequestPatch) (model.ServiceRequest, error) {
	return s.repo.Update(ctx, id, patch)
}

// UpdateStatus 原样写入调用方给出的状态（包括空字符串），不做枚举校验；
// 只有完全未提供 status 时才报错
func (s *ServiceRequestService) UpdateStatus(ctx context.Context, id uint, status *string) (model.ServiceRequest, error) {
	if status == nil {
		return model.ServiceRequest{}, apperrors.NewValidation("status is required")
	}
	return s.repo.Update(ctx, id, model.ServiceRequestPatch{Status: status})
}

func (s *ServiceRequestService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
