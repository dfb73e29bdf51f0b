package user

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "blindstore-api/internal/domain/user"
)

func TestRepository_CreateUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := NewRepository(mock)
	req := domain.User{UUID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(req.UUID, req.Username, req.PasswordHash).
		WillReturnRows(pgxmock.NewRows(
			[]string{"uuid", "username", "password_hash", "created_at"},
		).AddRow(req.UUID, req.Username, req.PasswordHash, time.Now().UTC()))

	u, err := r.CreateUser(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateUser_DuplicateUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := NewRepository(mock)
	req := domain.User{UUID: uuid.New(), Username: "alice", PasswordHash: "h"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(req.UUID, req.Username, req.PasswordHash).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = r.CreateUser(context.Background(), req)
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestRepository_FetchUserByUsername_Missing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := NewRepository(mock)

	mock.ExpectQuery("SELECT uuid, username, password_hash, created_at").
		WithArgs("ghost").
		WillReturnRows(pgxmock.NewRows([]string{"uuid", "username", "password_hash", "created_at"}))

	u, err := r.FetchUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)
}
