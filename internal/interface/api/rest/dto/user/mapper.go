package user

import (
	"blindstore-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	return User{
		UUID:      uDomain.UUID,
		Username:  uDomain.Username,
		CreatedAt: uDomain.CreatedAt,
	}
}
