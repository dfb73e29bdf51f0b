package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blindstore-api/internal/domain/user"
	"blindstore-api/internal/infrastructure/jwt"
)

func TestAuthService_PasswordRoundTrip(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"))

	hash, err := as.HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	u := &user.User{UUID: uuid.New(), Username: "alice", PasswordHash: hash}

	token, err := as.GenerateToken(u, "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthService_WrongPassword(t *testing.T) {
	as := NewAuthService(jwt.New("test-secret"))

	hash, err := as.HashPassword("hunter22")
	require.NoError(t, err)

	u := &user.User{UUID: uuid.New(), Username: "alice", PasswordHash: hash}

	_, err = as.GenerateToken(u, "hunter23")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_IssueTokenClaims(t *testing.T) {
	jwtService := jwt.New("test-secret")
	as := NewAuthService(jwtService)

	u := &user.User{UUID: uuid.New(), Username: "bob"}

	token, err := as.IssueToken(u)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.UUID.String(), claims.UserID)
	assert.Equal(t, "bob", claims.Username)
}
