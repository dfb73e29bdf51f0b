package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID     UUID
		Username string
		// PasswordHash is the bcrypt hash used for login only. File
		// encryption passwords never reach the server in any form.
		PasswordHash string

		CreatedAt time.Time
	}
	Users []*User
)
