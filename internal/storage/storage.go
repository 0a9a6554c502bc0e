package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoStore implements Store on an afero.Fs: the OS filesystem for exports,
// an in-memory one in tests.
type AferoStore struct {
	fs afero.Fs
}

// NewAferoStore creates a new AferoStore.
func NewAferoStore(fs afero.Fs) *AferoStore {
	return &AferoStore{fs: fs}
}

// NewOSStore returns an AferoStore backed by the OS filesystem.
func NewOSStore() *AferoStore {
	return NewAferoStore(afero.NewOsFs())
}

// Save writes reader to path, creating parent directories as needed.
func (s *AferoStore) Save(ctx context.Context, path string, reader io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := s.fs.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	n, err := io.Copy(f, reader)
	if err != nil {
		return n, fmt.Errorf("write %s: %w", path, err)
	}
	return n, nil
}

// Open opens path for reading.
func (s *AferoStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fs.OpenFile(path, os.O_RDONLY, 0)
}

// Delete removes path recursively.
func (s *AferoStore) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.fs.RemoveAll(path)
}
