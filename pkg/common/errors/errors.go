/*
  - 使用实例
    if errors.Is(err, apperrors.ErrNotFound) {
    // 404
    }

    // 携带元数据:
    if hzteErr, ok := err.(*hzte.Error); ok {
    // 安全访问 Meta
    }
*/
package errors

import (
	"errors"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
)

// 定义原始错误
var (
	rawErrValidation       = errors.New("validation failed")
	rawErrNotFound         = errors.New("record not found")
	rawErrConflict         = errors.New("record already exists")
	rawErrUnauthorized     = errors.New("could not validate credentials")
	rawErrInvalidToken     = errors.New("invalid token")
	rawErrDatabaseInternal = errors.New("database internal error")
)

// 包装成 Hertz 错误类型
var (
	ErrValidation       = hzte.New(rawErrValidation, hzte.ErrorTypePublic, nil)
	ErrNotFound         = hzte.New(rawErrNotFound, hzte.ErrorTypePublic, nil)
	ErrConflict         = hzte.New(rawErrConflict, hzte.ErrorTypePublic, nil)
	ErrUnauthorized     = hzte.New(rawErrUnauthorized, hzte.ErrorTypePublic, nil)
	ErrInvalidToken     = hzte.New(rawErrInvalidToken, hzte.ErrorTypePublic, nil)
	ErrDatabaseInternal = hzte.New(rawErrDatabaseInternal, hzte.ErrorTypePrivate, nil)
)

// NewNotFound 带资源名的 NotFound，meta 为资源名
func NewNotFound(resource string) *hzte.Error {
	return hzte.New(ErrNotFound, hzte.ErrorTypePublic, resource)
}

func NewConflict(meta interface{}) *hzte.Error {
	return hzte.New(ErrConflict, hzte.ErrorTypePublic, meta)
}

func NewValidation(meta interface{}) *hzte.Error {
	return hzte.New(ErrValidation, hzte.ErrorTypePublic, meta)
}
