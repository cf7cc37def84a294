package errors

import (
	"errors"
	"fmt"
	"strings"

	hzte "github.com/cloudwego/hertz/pkg/common/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// WrapGormError 将底层数据库错误转变为业务可识别错误
// 参数说明：
//   - rawErr: 原始GORM错误
//   - resource: 资源名，NotFound 时写入 Meta，供响应文案使用
func WrapGormError(rawErr error, resource string) error {
	if rawErr == nil {
		return nil
	}

	switch {
	case errors.Is(rawErr, gorm.ErrRecordNotFound):
		return NewNotFound(resource)
	case IsDuplicateError(rawErr):
		return NewConflict(resource)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(rawErr, &mysqlErr) {
		switch mysqlErr.Number {
		case 1045, 1049, 1146: // 数据库连接、表不存在等错误
			return fmt.Errorf("%w: %s", ErrDatabaseInternal, mysqlErr.Message)
		}
	}

	// 兜底处理：附加原始错误信息
	return fmt.Errorf("%w: %v", ErrDatabaseInternal, rawErr)
}

// IsDuplicateError 判断是否为唯一约束冲突（MySQL / PostgreSQL / SQLite）
func IsDuplicateError(err error) bool {
	if errors.Is(err, ErrConflict) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ResourceOf 取出错误链上第一个带字符串 Meta 的资源名
func ResourceOf(err error) string {
	for err != nil {
		var hzErr *hzte.Error
		if !errors.As(err, &hzErr) {
			return ""
		}
		if name, ok := hzErr.Meta.(string); ok && name != "" {
			return name
		}
		err = hzErr.Err
	}
	return ""
}
