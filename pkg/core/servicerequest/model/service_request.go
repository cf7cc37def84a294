package model

import (
	"time"

	"gorm.io/gorm"
)

const StatusPending = "pending"

// ServiceRequest 用户向书店出售图书的申请；Status 为自由字符串
type ServiceRequest struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	UserID       uint   `gorm:"index"`
	Title        string `gorm:"type:varchar(255)"`
	Author       string `gorm:"type:varchar(255)"`
	Genre        string `gorm:"type:varchar(100)"`
	Description  string `gorm:"type:text"`
	Price        float64
	ContactEmail string    `gorm:"type:varchar(255)"`
	Status       string    `gorm:"type:varchar(32);default:pending;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (ServiceRequest) TableName() string {
	return "service_requests"
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&ServiceRequest{})
}

type ServiceRequestPatch struct {
	Title        *string
	Author       *string
	Genre        *string
	Description  *string
	Price        *float64
	ContactEmail *string
	Status       *string
}

func (p ServiceRequestPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Author != nil {
		cols["author"] = *p.Author
	}
	if p.Genre != nil {
		cols["genre"] = *p.Genre
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.ContactEmail != nil {
		cols["contact_email"] = *p.ContactEmail
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	return cols
}

// Filter 列表查询条件，零值表示不过滤
type Filter struct {
	UserID uint
	Status string
	Title  string
}
