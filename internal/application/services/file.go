package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"blindstore-api/internal/application/ports"
	domain "blindstore-api/internal/domain/file"
	"blindstore-api/internal/domain/user"
	"blindstore-api/internal/infrastructure/mq"
)

const (
	maxNameLen     = 255
	maxMimeTypeLen = 255

	defaultPageSize = 20
	maxPageSize     = 100
)

type FileService struct {
	blobs          ports.BlobStore
	fileRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
	logger         *zap.Logger
	maxUploadBytes int64
}

func NewFileService(
	blobs ports.BlobStore,
	fileRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
	logger *zap.Logger,
	maxUploadBytes int64,
) ports.FileService {
	return &FileService{
		blobs:          blobs,
		fileRepository: fileRepository,
		mq:             mq,
		mCounter:       mCounter,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

func validateUpload(meta domain.UploadMeta, size, maxSize int64) error {
	if meta.Name == "" {
		return fmt.Errorf("%w: original_name is required", domain.ErrValidation)
	}
	if len(meta.Name) > maxNameLen {
		return fmt.Errorf("%w: original_name exceeds %d bytes", domain.ErrValidation, maxNameLen)
	}
	if len(meta.MimeType) > maxMimeTypeLen {
		return fmt.Errorf("%w: mime_type exceeds %d bytes", domain.ErrValidation, maxMimeTypeLen)
	}
	if size == 0 {
		return fmt.Errorf("%w: empty payload", domain.ErrValidation)
	}
	if size > maxSize {
		return fmt.Errorf("%w: payload exceeds %d bytes", domain.ErrValidation, maxSize)
	}
	return nil
}

// Upload persists the encrypted payload first and only then indexes it. If
// the insert fails the blob is removed best effort; an orphaned blob no index
// entry points to is the accepted failure mode, the reverse (an index entry
// over missing bytes) is not.
func (fs *FileService) Upload(ctx context.Context, principal user.UUID, meta domain.UploadMeta, data []byte) (*domain.File, error) {
	if err := validateUpload(meta, int64(len(data)), fs.maxUploadBytes); err != nil {
		return nil, err
	}

	f := &domain.File{
		ID:      uuid.New(),
		OwnerID: principal,

		Name:      meta.Name,
		MimeType:  meta.MimeType,
		SizeBytes: int64(len(data)),

		CreatedAt: time.Now().UTC(),
	}

	if err := fs.blobs.Put(ctx, principal, f.ID, data); err != nil {
		return nil, err
	}

	if err := fs.fileRepository.Insert(ctx, f); err != nil {
		if derr := fs.blobs.Delete(ctx, principal, f.ID); derr != nil {
			fs.logger.Warn("orphaned blob left after failed index insert",
				zap.Stringer("blob_id", f.ID),
				zap.Error(derr),
			)
		}
		return nil, err
	}

	fs.mq.GetInputChan() <- mq.NewFileEvent(http.MethodPost, f)
	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return f, nil
}

func (fs *FileService) List(ctx context.Context, principal user.UUID, q domain.ListQuery) (domain.Files, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.Sort == "" {
		q.Sort = domain.SortName
	}
	if q.Direction == "" {
		q.Direction = domain.Asc
	}

	// Listing is always owner-scoped; no query content can widen it.
	return fs.fileRepository.List(ctx, principal, q)
}

func (fs *FileService) Download(ctx context.Context, principal user.UUID, id uuid.UUID) (*domain.File, []byte, error) {
	f, err := fs.fileRepository.Fetch(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !authorize(principal, f.OwnerID) {
		return nil, nil, domain.ErrForbidden
	}

	// A delete racing this call may have removed the blob already; that
	// surfaces as NotFound, never as partial bytes.
	data, err := fs.blobs.Get(ctx, f.OwnerID, f.ID)
	if err != nil {
		return nil, nil, err
	}

	return f, data, nil
}

// Delete removes the index entry before the blob, the inverse of Upload, so
// a crash in between strands an unreferenced blob rather than a dangling
// index entry.
func (fs *FileService) Delete(ctx context.Context, principal user.UUID, id uuid.UUID) error {
	f, err := fs.fileRepository.Fetch(ctx, id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	if !authorize(principal, f.OwnerID) {
		return domain.ErrForbidden
	}

	if err := fs.fileRepository.Delete(ctx, id); err != nil {
		return err
	}
	if err := fs.blobs.Delete(ctx, f.OwnerID, f.ID); err != nil {
		return err
	}

	fs.mq.GetInputChan() <- mq.NewFileEvent(http.MethodDelete, f)
	fs.mCounter.WithLabelValues("files_deleted_total").Inc()

	return nil
}

func (fs *FileService) Stats(ctx context.Context) (domain.Totals, error) {
	return fs.fileRepository.Totals(ctx)
}
