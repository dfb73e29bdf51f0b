package file

import "errors"

// Failure taxonomy shared by the index, the blob store and the file service.
// Controllers map these to HTTP statuses with errors.Is.
var (
	ErrNotFound   = errors.New("file not found")
	ErrForbidden  = errors.New("file belongs to another owner")
	ErrConflict   = errors.New("file id already exists")
	ErrValidation = errors.New("invalid file request")
	// ErrStorage wraps durable-storage I/O failures. The core never retries;
	// retry policy belongs to the caller.
	ErrStorage = errors.New("storage failure")
)
