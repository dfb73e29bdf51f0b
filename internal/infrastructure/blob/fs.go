// Package blob implements the owner-partitioned blob store on the local
// filesystem. Every owner gets a private directory under the storage root and
// blobs are stored as `<root>/<owner>/<id>.bin`; content is written and read
// verbatim, the store never inspects it.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"blindstore-api/internal/domain/file"
	"blindstore-api/internal/domain/user"
)

type FSStore struct {
	root   string
	logger *zap.Logger
}

func NewFSStore(root string, logger *zap.Logger) (*FSStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create storage root: %w", err)
	}
	return &FSStore{root: root, logger: logger}, nil
}

func (s *FSStore) ownerDir(owner user.UUID) string {
	return filepath.Join(s.root, owner.String())
}

func (s *FSStore) path(owner user.UUID, id uuid.UUID) string {
	return filepath.Join(s.ownerDir(owner), id.String()+".bin")
}

// EnsurePartition pre-creates an owner's directory; called on signup so a new
// account always has its partition in place.
func (s *FSStore) EnsurePartition(owner user.UUID) error {
	if err := os.MkdirAll(s.ownerDir(owner), 0o700); err != nil {
		return fmt.Errorf("%w: create partition: %v", file.ErrStorage, err)
	}
	return nil
}

// Put writes to a temp file in the owner's partition and renames it into
// place, so a concurrent Get observes either nothing or the full content.
func (s *FSStore) Put(ctx context.Context, owner user.UUID, id uuid.UUID, data []byte) error {
	if err := s.EnsurePartition(owner); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.ownerDir(owner), "put-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp: %v", file.ErrStorage, err)
	}
	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, s.path(owner, id))
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write blob: %v", file.ErrStorage, err)
	}

	return nil
}

func (s *FSStore) Get(ctx context.Context, owner user.UUID, id uuid.UUID) ([]byte, error) {
	data, err := os.ReadFile(s.path(owner, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, file.ErrNotFound
		}
		return nil, fmt.Errorf("%w: read blob: %v", file.ErrStorage, err)
	}
	return data, nil
}

func (s *FSStore) Delete(ctx context.Context, owner user.UUID, id uuid.UUID) error {
	err := os.Remove(s.path(owner, id))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove blob: %v", file.ErrStorage, err)
	}
	if err == nil {
		s.logger.Debug("blob removed",
			zap.Stringer("owner", owner),
			zap.Stringer("blob_id", id),
		)
	}
	return nil
}
