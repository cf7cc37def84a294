package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "book-hub/pkg/common/errors"
	"book-hub/pkg/core/security"
	"book-hub/pkg/core/user/model"
	"book-hub/pkg/core/user/repository/dao"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UserService 负责注册、登录与令牌身份解析
type UserService struct {
	users  dao.UserRepository
	hasher security.PasswordHasher
	tokens *security.TokenManager
}

func NewUserService(users dao.UserRepository, hasher security.PasswordHasher, tokens *security.TokenManager) *UserService {
	return &UserService{users: users, hasher: hasher, tokens: tokens}
}

// Register 邮箱已存在时返回 ErrConflict
func (s *UserService) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	email := strings.TrimSpace(in.Email)

	exists, err := s.users.IsEmailExists(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, apperrors.NewConflict("Email")
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Email:          email,
		HashedPassword: hashed,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		IsActive:       true,
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login 用户不存在与密码错误返回同一个 ErrUnauthorized
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.QueryByEmail(ctx, strings.TrimSpace(email))
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return "", apperrors.ErrUnauthorized
	case err != nil:
		return "", err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", apperrors.ErrUnauthorized
	}

	token, _, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", err
	}
	return token, nil
}

// CurrentUser 解析令牌并返回对应用户
func (s *UserService) CurrentUser(ctx context.Context, token string) (model.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return model.User{}, apperrors.ErrUnauthorized
	}
	return s.users.QueryByEmail(ctx, claims.Subject)
}
