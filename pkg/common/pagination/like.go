package pagination

import (
	"strings"

	"gorm.io/gorm"
)

// ContainsFold 追加 LOWER(column) LIKE %q% 条件，q 为空时不做处理。
// column 只能来自代码常量。
func ContainsFold(db *gorm.DB, column, q string) *gorm.DB {
	if q == "" {
		return db
	}
	return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(q)+"%")
}
