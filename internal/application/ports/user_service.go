package ports

import (
	"context"

	"blindstore-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, username, password string) (*user.User, error)
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
}
