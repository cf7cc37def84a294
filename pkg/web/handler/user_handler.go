package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/app"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/core/user/service"
	"book-hub/pkg/web/model"
)

const bearerPrefix = "bearer "

type UserHandler struct {
	users        *service.UserService
	hideInternal bool
}

func NewUserHandler(users *service.UserService, hideInternal bool) *UserHandler {
	return &UserHandler{users: users, hideInternal: hideInternal}
}

func (h *UserHandler) Register(ctx context.Context, c *app.RequestContext) {
	var req model.RegisterReq
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := validatePassword(req.Password); err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}

	user, err := h.users.Register(ctx, service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if errors.Is(err, apperrors.ErrConflict) {
		c.JSON(http.StatusBadRequest, model.ErrorDetail{Detail: "Email already registered"})
		return
	}
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}

	c.JSON(http.StatusCreated, model.NewUserOut(user))
}

// Login 兼容 JSON {"email","password"} 与表单 username/password
func (h *UserHandler) Login(ctx context.Context, c *app.RequestContext) {
	var req model.LoginReq
	if err := c.BindAndValidate(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnprocessableEntity, model.ErrorDetail{Detail: "email and password are required"})
		return
	}

	token, err := h.users.Login(ctx, req.Email, req.Password)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, model.ErrorDetail{Detail: "Incorrect email or password"})
		return
	}
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}

	c.JSON(http.StatusOK, model.Token{AccessToken: token, TokenType: "bearer"})
}

func (h *UserHandler) Me(ctx context.Context, c *app.RequestContext) {
	token, ok := bearerToken(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, model.ErrorDetail{Detail: credentialsMessage})
		return
	}

	user, err := h.users.CurrentUser(ctx, token)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		c.Header("WWW-Authenticate", "Bearer")
	}
	if err != nil {
		respondError(ctx, c, err, h.hideInternal)
		return
	}

	c.JSON(http.StatusOK, model.NewUserOut(user))
}

const (
	minPasswordChars = 6
	maxPasswordChars = 72
)

// validatePassword 密码长度按字符（rune）计算，6 到 72 位
func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < minPasswordChars || n > maxPasswordChars {
		return apperrors.NewValidation(fmt.Sprintf(
			"password must be %d to %d characters, got %d", minPasswordChars, maxPasswordChars, n))
	}
	return nil
}

func bearerToken(c *app.RequestContext) (string, bool) {
	raw := strings.TrimSpace(string(c.GetHeader("Authorization")))
	if len(raw) <= len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(raw[len(bearerPrefix):])
	return token, token != ""
}
