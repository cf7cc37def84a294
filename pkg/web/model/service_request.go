package model

import (
	"time"

	srmodel "book-hub/pkg/core/servicerequest/model"
)

type (
	ServiceRequestCreate struct {
		UserID       uint    `json:"user_id,required"`
		Title        string  `json:"title,required"`
		Author       string  `json:"author,required"`
		Genre        string  `json:"genre,required"`
		Description  string  `json:"description,required"`
		Price        float64 `json:"price,required"`
		ContactEmail string  `json:"contact_email,required"`
	}

	ServiceRequestUpdate struct {
		ID           uint     `path:"id,required"`
		Title        *string  `json:"title"`
		Author       *string  `json:"author"`
		Genre        *string  `json:"genre"`
		Description  *string  `json:"description"`
		Price        *float64 `json:"price"`
		ContactEmail *string  `json:"contact_email"`
		Status       *string  `json:"status"`
	}

	ServiceRequestListQuery struct {
		Skip   int    `query:"skip" default:"0" vd:"$>=0"`
		Limit  int    `query:"limit" default:"10" vd:"$>=0&&$<=100"`
		UserID uint   `query:"user_id"`
		Status string `query:"status"`
		Title  string `query:"title"`
	}

	// StatusUpdate status 可来自查询参数或 JSON 请求体，空字符串也是合法值
	StatusUpdate struct {
		ID     uint    `path:"id,required"`
		Status *string `json:"status"`
	}

	StatusUpdated struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}

	ServiceRequestOut struct {
		ID           uint      `json:"id"`
		UserID       uint      `json:"user_id"`
		Title        string    `json:"title"`
		Author       string    `json:"author"`
		Genre        string    `json:"genre"`
		Description  string    `json:"description"`
		Price        float64   `json:"price"`
		ContactEmail string    `json:"contact_email"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}
)

func (r ServiceRequestCreate) ToModel() srmodel.ServiceRequest {
	return srmodel.ServiceRequest{
		UserID:       r.UserID,
		Title:        r.Title,
		Author:       r.Author,
		Genre:        r.Genre,
		Description:  r.Description,
		Price:        r.Price,
		ContactEmail: r.ContactEmail,
	}
}

func (r ServiceRequestUpdate) ToPatch() srmodel.ServiceRequestPatch {
	return srmodel.ServiceRequestPatch{
		Title:        r.Title,
		Author:       r.Author,
		Genre:        r.Genre,
		Description:  r.Description,
		Price:        r.Price,
		ContactEmail: r.ContactEmail,
		Status:       r.Status,
	}
}

func NewServiceRequestOut(s srmodel.ServiceRequest) ServiceRequestOut {
	return ServiceRequestOut{
		ID:           s.ID,
		UserID:       s.UserID,
		Title:        s.Title,
		Author:       s.Author,
		Genre:        s.Genre,
		Description:  s.Description,
		Price:        s.Price,
		ContactEmail: s.ContactEmail,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
	}
}
