package file

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the metadata index: a durable map from file id to its record
// with owner-scoped listing. It never sees blob content.
type Repository interface {
	Insert(ctx context.Context, f *File) error
	Fetch(ctx context.Context, id uuid.UUID) (*File, error)
	// Delete is idempotent; removing an absent record is not an error here.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the requested page of the owner's filtered, sorted
	// records together with the total match count before pagination.
	List(ctx context.Context, ownerID uuid.UUID, q ListQuery) (Files, int64, error)
	Totals(ctx context.Context) (Totals, error)
}
