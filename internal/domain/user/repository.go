package user

import (
	"context"
)

type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	// Fetch methods return (nil, nil) when no such user exists.
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
}
