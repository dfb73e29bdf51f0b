package ports

import (
	"context"

	"github.com/google/uuid"

	"blindstore-api/internal/domain/user"
)

// BlobStore persists opaque byte sequences partitioned by owner. It never
// parses, validates or transforms the bytes it is given.
type BlobStore interface {
	// EnsurePartition pre-creates the owner's partition; called on signup.
	EnsurePartition(owner user.UUID) error
	// Put is atomic from the caller's point of view: a concurrent Get for
	// the same id sees nothing or the complete bytes, never a prefix.
	Put(ctx context.Context, owner user.UUID, id uuid.UUID, data []byte) error
	// Get fails with file.ErrNotFound when no blob exists in the owner's
	// partition.
	Get(ctx context.Context, owner user.UUID, id uuid.UUID) ([]byte, error)
	// Delete is idempotent.
	Delete(ctx context.Context, owner user.UUID, id uuid.UUID) error
}
