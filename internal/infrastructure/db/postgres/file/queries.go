package file

const (
	InsertFile = `
		INSERT INTO files (id, owner_id, name, mime_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	SelectFileByID = `
		SELECT id, owner_id, name, mime_type, size_bytes, created_at
		FROM files
		WHERE id = $1
	`
	DeleteFileByID = `DELETE FROM files WHERE id = $1`

	// The substring filter is shared by the page select and the count so
	// total always refers to the same matching set. $2 carries the pattern
	// with LIKE wildcards already escaped; an empty substring passes ''
	// and matches everything via the OR branch.
	selectFilesPrefix = `
		SELECT id, owner_id, name, mime_type, size_bytes, created_at
		FROM files
		WHERE owner_id = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%' ESCAPE '\')
	`
	CountFiles = `
		SELECT COUNT(*)
		FROM files
		WHERE owner_id = $1 AND ($2 = '' OR name ILIKE '%' || $2 || '%' ESCAPE '\')
	`
	SelectTotals = `SELECT COUNT(*), COALESCE(SUM(size_bytes), 0) FROM files`
)
