package handler

import (
	"context"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"book-hub/pkg/common/pagination"
	srmodel "book-hub/pkg/core/servicerequest/model"
	"book-hub/pkg/core/servicerequest/service"
	"book-hub/pkg/web/model"
)

type ServiceRequestHandler struct {
	requests     *service.ServiceRequestService
	hideInternal bool
}

func NewServiceRequestHandler(requests *service.ServiceRequestService, hideInternal bool) *ServiceRequestHandler {
	return &ServiceRequestHandler{requests: requests, hideInternal: hideInternal}
}

func (h *ServiceRequestHandler) Create(ctx context.Context, c *app.RequestContext) {
	var req model.ServiceRequestCreate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.requests.Create(ctx, req.ToModel())
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusCreated, model.NewServiceRequestOut(created))
}

func (h *ServiceRequestHandler) List(ctx context.Context, c *app.RequestContext) {
	var req model.ServiceRequestListQuery
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	filter := srmodel.Filter{UserID: req.UserID, Status: req.Status, Title: req.Title}
	res, err := h.requests.List(ctx, filter, req.Skip, req.Limit)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, pagination.Map(res, model.NewServiceRequestOut))
}

func (h *ServiceRequestHandler) Get(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	found, err := h.requests.Get(ctx, req.ID)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewServiceRequestOut(found))
}

func (h *ServiceRequestHandler) Update(ctx context.Context, c *app.RequestContext) {
	var req model.ServiceRequestUpdate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.requests.Update(ctx, req.ID, req.ToPatch())
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.NewServiceRequestOut(updated))
}

// UpdateStatus 查询参数 ?status= 优先，其次读取 JSON 请求体
func (h *ServiceRequestHandler) UpdateStatus(ctx context.Context, c *app.RequestContext) {
	var req model.StatusUpdate
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}
	if c.QueryArgs().Has("status") {
		q := c.Query("status")
		req.Status = &q
	}

	updated, err := h.requests.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.StatusUpdated{
		Message: "Status updated successfully",
		Status:  updated.Status,
	})
}

func (h *ServiceRequestHandler) Delete(ctx context.Context, c *app.RequestContext) {
	var req model.IDPath
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}

	if err := h.requests.Delete(ctx, req.ID); err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}
	c.JSON(http.StatusOK, model.Message{Message: "Service request deleted successfully"})
}
