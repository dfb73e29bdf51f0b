// Package file holds the in-memory metadata index. It backs tests and
// DB-less runs (storage driver "memory") with the same listing semantics as
// the Postgres repository: case-insensitive substring filter, whitelisted
// sort with id tie-break, 1-based pagination.
package file

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	domain "blindstore-api/internal/domain/file"
)

type Repository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*domain.File
}

func NewRepository() *Repository {
	return &Repository{records: make(map[uuid.UUID]*domain.File)}
}

func (r *Repository) Insert(ctx context.Context, f *domain.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[f.ID]; ok {
		return domain.ErrConflict
	}

	cp := *f
	r.records[f.ID] = &cp

	return nil
}

func (r *Repository) Fetch(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.records[id]
	if !ok {
		return nil, nil
	}

	cp := *f
	return &cp, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, id)

	return nil
}

func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, q domain.ListQuery) (domain.Files, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(q.Substring)

	var matched domain.Files
	for _, f := range r.records {
		if f.OwnerID != ownerID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(f.Name), needle) {
			continue
		}
		cp := *f
		matched = append(matched, &cp)
	}

	sortFiles(matched, q.Sort, q.Direction)

	total := int64(len(matched))

	if q.Page < 1 {
		q.Page = 1
	}
	// Compare before multiplying so a huge page number cannot overflow the
	// offset; any past-the-end page is an empty slice, never an error.
	if q.PageSize < 1 || q.Page-1 > len(matched)/q.PageSize {
		return domain.Files{}, total, nil
	}
	start := (q.Page - 1) * q.PageSize
	if start >= len(matched) {
		return domain.Files{}, total, nil
	}
	end := start + q.PageSize
	if end > len(matched) {
		end = len(matched)
	}

	return matched[start:end], total, nil
}

func sortFiles(fs domain.Files, field domain.SortField, dir domain.Direction) {
	desc := dir == domain.Desc

	sort.Slice(fs, func(i, j int) bool {
		a, b := fs[i], fs[j]

		var less, eq bool
		switch field {
		case domain.SortSize:
			less, eq = a.SizeBytes < b.SizeBytes, a.SizeBytes == b.SizeBytes
		case domain.SortDate:
			less, eq = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		default:
			less, eq = a.Name < b.Name, a.Name == b.Name
		}

		// Ties always break by id ascending, regardless of direction, so
		// page boundaries stay stable.
		if eq {
			return a.ID.String() < b.ID.String()
		}
		if desc {
			return !less
		}
		return less
	})
}

func (r *Repository) Totals(ctx context.Context) (domain.Totals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var t domain.Totals
	for _, f := range r.records {
		t.Count++
		t.SizeBytes += f.SizeBytes
	}

	return t, nil
}
