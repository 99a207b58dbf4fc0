package ports

import (
	"context"
	"io"
)

// FileStore persists uploaded artifacts (resumes) keyed by generated id.
// Backends: local directory or an S3-compatible object store.
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
