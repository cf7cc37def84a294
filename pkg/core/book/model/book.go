package model

import (
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID              uint   `gorm:"primaryKey;autoIncrement"`
	Title           string `gorm:"type:varchar(255);index"`
	Author          string `gorm:"type:varchar(255);index"`
	Genre           string `gorm:"type:varchar(100)"`
	PublicationDate string `gorm:"type:varchar(64)"` // 原样保存，不解析
	Price           float64
	Rating          float64
	Description     string `gorm:"type:text"`
	Image           string `gorm:"type:varchar(1024)"`
	ISBN            string `gorm:"column:isbn;type:varchar(32);uniqueIndex"`
	Pages           int
	Language        string `gorm:"type:varchar(64)"`
	Publisher       string `gorm:"type:varchar(255)"`
	Stock           int
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Book) TableName() string {
	return "books"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Book{})
}

// BookPatch 仅非 nil 字段会被写入
type BookPatch struct {
	Title           *string
	Author          *string
	Genre           *string
	PublicationDate *string
	Price           *float64
	Rating          *float64
	Description     *string
	Image           *string
	ISBN            *string
	Pages           *int
	Language        *string
	Publisher       *string
	Stock           *int
}

// Columns 转换为 GORM Updates 使用的列映射
func (p BookPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	setIf(cols, "title", p.Title)
	setIf(cols, "author", p.Author)
	setIf(cols, "genre", p.Genre)
	setIf(cols, "publication_date", p.PublicationDate)
	setIf(cols, "price", p.Price)
	setIf(cols, "rating", p.Rating)
	setIf(cols, "description", p.Description)
	setIf(cols, "image", p.Image)
	setIf(cols, "isbn", p.ISBN)
	setIf(cols, "pages", p.Pages)
	setIf(cols, "language", p.Language)
	setIf(cols, "publisher", p.Publisher)
	setIf(cols, "stock", p.Stock)
	return cols
}

func setIf[T any](cols map[string]interface{}, name string, v *T) {
	if v != nil {
		cols[name] = *v
	}
}

// Filter 标题、作者均为大小写不敏感的子串匹配
type Filter struct {
	Title  string
	Author string
}
