package storage

import (
	"context"
	"io"
)

// Store is the filesystem the static exporter writes to.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes path and anything beneath it. Missing paths are not an error.
	Delete(ctx context.Context, path string) error
}
