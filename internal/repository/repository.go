package repository

import (
	"context"
	"errors"

	"github.com/ghaggin/bingwa/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	AddUser(ctx context.Context, user *model.User) error
	GetUsers(ctx context.Context) ([]model.User, error)
}
