package file

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	domain "blindstore-api/internal/domain/file"
	"blindstore-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, f *domain.File) error {
	_, err := r.db.Exec(
		ctx,
		InsertFile,
		f.ID, f.OwnerID, f.Name, f.MimeType, f.SizeBytes, f.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return domain.ErrConflict
		}
		return err
	}

	return nil
}

func (r *Repository) Fetch(ctx context.Context, id uuid.UUID) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, id).Scan(
		&f.ID,
		&f.OwnerID,

		&f.Name,
		&f.MimeType,
		&f.SizeBytes,

		&f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, DeleteFileByID, id)
	return err
}

// sort columns are whitelisted here; query values never reach the ORDER BY
// clause directly.
var sortColumns = map[domain.SortField]string{
	domain.SortName: "name",
	domain.SortSize: "size_bytes",
	domain.SortDate: "created_at",
}

func listQuerySQL(q domain.ListQuery) string {
	col, ok := sortColumns[q.Sort]
	if !ok {
		col = "name"
	}
	dir := "ASC"
	if q.Direction == domain.Desc {
		dir = "DESC"
	}

	// Secondary order by id keeps pagination deterministic on ties.
	return selectFilesPrefix + fmt.Sprintf(" ORDER BY %s %s, id ASC LIMIT $3 OFFSET $4", col, dir)
}

// escapeLike neutralizes LIKE wildcards in the user-supplied substring so it
// matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func (r *Repository) List(ctx context.Context, ownerID uuid.UUID, q domain.ListQuery) (domain.Files, int64, error) {
	pattern := escapeLike(q.Substring)

	var total int64
	if err := r.db.QueryRow(ctx, CountFiles, ownerID, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	// Past-the-end pages short-circuit to an empty slice. Comparing before
	// multiplying also keeps a huge page number from overflowing into a
	// negative OFFSET.
	if q.PageSize < 1 || int64(q.Page-1) > total/int64(q.PageSize) {
		return domain.Files{}, total, nil
	}

	offset := (q.Page - 1) * q.PageSize
	rows, err := r.db.Query(ctx, listQuerySQL(q), ownerID, pattern, q.PageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var fs Files
	for rows.Next() {
		f := new(File)

		if err = rows.Scan(
			&f.ID,
			&f.OwnerID,

			&f.Name,
			&f.MimeType,
			&f.SizeBytes,

			&f.CreatedAt,
		); err != nil {
			return nil, 0, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return fromDBModels(&fs), total, nil
}

func (r *Repository) Totals(ctx context.Context) (domain.Totals, error) {
	var t domain.Totals
	if err := r.db.QueryRow(ctx, SelectTotals).Scan(&t.Count, &t.SizeBytes); err != nil {
		return domain.Totals{}, err
	}

	return t, nil
}
