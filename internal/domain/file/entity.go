package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	// File is one metadata record of the index. SizeBytes is the length of
	// the encrypted blob as stored, not the plaintext length; Name and
	// MimeType are caller-supplied labels and are never checked against the
	// blob content.
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

// UploadMeta is the sidecar record a client sends next to the encrypted
// payload. DeclaredSize and Algo are informational only; bookkeeping uses the
// actual stored length.
type UploadMeta struct {
	Name         string
	MimeType     string
	DeclaredSize int64
	Algo         string
}

type SortField string

const (
	SortName SortField = "name"
	SortSize SortField = "size"
	SortDate SortField = "date"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ListQuery scopes a listing within one owner. Substring matches the declared
// name case-insensitively; Page is 1-based.
type ListQuery struct {
	Substring string
	Sort      SortField
	Direction Direction
	Page      int
	PageSize  int
}

// Totals are index-wide aggregates for the stats endpoint.
type Totals struct {
	Count     int64
	SizeBytes int64
}
