package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID      uuid.UUID
		OwnerID uuid.UUID

		Name      string
		MimeType  string
		SizeBytes int64

		CreatedAt time.Time
	}
	Files []*File
)
