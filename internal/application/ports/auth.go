package ports

import (
	"blindstore-api/internal/domain/user"
)

type Auth interface {
	HashPassword(password string) (string, error)
	// GenerateToken verifies the login password against the stored hash and
	// issues a signed token on success.
	GenerateToken(u *user.User, requestPassword string) (string, error)
	// IssueToken issues a token without a password check (signup flow).
	IssueToken(u *user.User) (string, error)
}
