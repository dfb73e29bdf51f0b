// Package user holds the in-memory account store backing DB-less runs and
// tests. Uniqueness checks mirror the Postgres repository's constraints.
package user

import (
	"context"
	"sync"

	domain "blindstore-api/internal/domain/user"
	pgUser "blindstore-api/internal/infrastructure/db/postgres/user"
)

type Repository struct {
	mu      sync.RWMutex
	records map[domain.UUID]*domain.User
}

func NewRepository() *Repository {
	return &Repository{records: make(map[domain.UUID]*domain.User)}
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Exact comparison, same as the UNIQUE constraint on users.username.
	for _, u := range r.records {
		if u.Username == req.Username {
			return nil, pgUser.ErrUsernameAlreadyExists
		}
	}

	cp := req
	r.records[req.UUID] = &cp

	out := cp
	return &out, nil
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.records[uuid]
	if !ok {
		return nil, nil
	}

	cp := *u
	return &cp, nil
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.records {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}

	return nil, nil
}
