package file

import (
	"time"

	"github.com/google/uuid"
)

type (
	File struct {
		ID           uuid.UUID `json:"id"`
		OriginalName string    `json:"original_name"`
		MimeType     string    `json:"mime_type"`
		SizeBytes    int64     `json:"size_bytes"`
		CreatedAt    time.Time `json:"created_at"`
	}
	Files        []File
	ResponseData struct {
		Data       Files `json:"data"`
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalPages int64 `json:"total_pages"`
	}
)
