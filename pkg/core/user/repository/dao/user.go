package dao

import (
	"context"

	"book-hub/pkg/core/user/model"
)

type UserRepository interface {
	QueryByEmail(ctx context.Context, email string) (model.User, error)
	IsEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *model.User) error
}
