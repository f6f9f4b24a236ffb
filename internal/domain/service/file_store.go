package service

import (
	"context"
	"io"
)

// FileStore defines the interface for blob storage of uploaded files.
type FileStore interface {
	// Save writes the content under the given key and returns a URL the
	// frontend can reference.
	Save(ctx context.Context, key, contentType string, content io.Reader) (string, error)

	// Open returns a reader for a previously saved key.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
