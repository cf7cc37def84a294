package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/web/model"
)

const credentialsMessage = "Could not validate credentials"

// 统一错误响应方法，响应体固定为 {"detail": "..."}
func respondError(ctx context.Context, c *app.RequestContext, err error, hideInternal bool) {
	status, detail := classify(err, hideInternal)
	if status >= http.StatusInternalServerError {
		hlog.CtxErrorf(ctx, "%s %s failed: %v", c.Method(), c.Path(), err)
	}
	c.JSON(status, model.ErrorDetail{Detail: detail})
}

func classify(err error, hideInternal bool) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, fmt.Sprintf("%s not found", resourceName(err))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, fmt.Sprintf("%s already exists", resourceName(err))
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidToken):
		return http.StatusUnauthorized, credentialsMessage
	case errors.Is(err, apperrors.ErrValidation):
		if msg := apperrors.ResourceOf(err); msg != "" {
			return http.StatusUnprocessableEntity, msg
		}
		return http.StatusUnprocessableEntity, err.Error()
	}
	if hideInternal {
		return http.StatusInternalServerError, "Internal server error"
	}
	return http.StatusInternalServerError, err.Error()
}

func resourceName(err error) string {
	if name := apperrors.ResourceOf(err); name != "" {
		return name
	}
	return "Resource"
}

// bindError 绑定或 vd 校验失败统一按 422 返回
func bindError(c *app.RequestContext, err error) {
	c.JSON(http.StatusUnprocessableEntity, model.ErrorDetail{Detail: err.Error()})
}
