package model

import (
	"time"

	usermodel "book-hub/pkg/core/user/model"
)

// 请求/响应数据结构
type (
	RegisterReq struct {
		Email     string `json:"email,required" vd:"email($)"`
		Password  string `json:"password,required"` // 长度按字符计，见 handler.validatePassword
		FirstName string `json:"first_name,required"`
		LastName  string `json:"last_name,required"`
	}

	// LoginReq 同时接受 JSON 与 OAuth2 表单（username 字段即邮箱）
	LoginReq struct {
		Email    string `json:"email" form:"username" vd:"email($)"`
		Password string `json:"password" form:"password"`
	}

	UserOut struct {
		ID        uint      `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"first_name"`
		LastName  string    `json:"last_name"`
		IsActive  bool      `json:"is_active"`
		CreatedAt time.Time `json:"created_at"`
	}

	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
)

func NewUserOut(u usermodel.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
