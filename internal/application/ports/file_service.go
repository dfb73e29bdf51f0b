package ports

import (
	"context"

	"github.com/google/uuid"

	"blindstore-api/internal/domain/file"
	"blindstore-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, principal user.UUID, meta file.UploadMeta, data []byte) (*file.File, error)
	List(ctx context.Context, principal user.UUID, q file.ListQuery) (file.Files, int64, error)
	Download(ctx context.Context, principal user.UUID, id uuid.UUID) (*file.File, []byte, error)
	Delete(ctx context.Context, principal user.UUID, id uuid.UUID) error
	Stats(ctx context.Context) (file.Totals, error)
}
