// Package storage implements the file store port over a gocloud.dev blob
// bucket, so local disk, S3 and GCS are all driven by a single bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"sagedo/config"
	"sagedo/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const openTimeout = 15 * time.Second

// blobStore stores files in a blob bucket and hands out relative URLs that
// the HTTP layer serves back through Open.
type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// Params defines the parameters required for the blob store.
type Params struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

// New opens the configured bucket. For file:// URLs the directory is created
// first since fileblob refuses to open a missing path.
func New(params Params) (service.FileStore, error) {
	bucketURL := params.Config.Upload.BucketURL
	if bucketURL == "" {
		return nil, errors.New("upload.bucketUrl is not configured")
	}

	if dir, ok := strings.CutPrefix(bucketURL, "file://"); ok {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "create upload directory")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Blob bucket opened", slog.String("bucketURL", bucketURL))

	return &blobStore{bucket: bucket, logger: params.Logger}, nil
}

func (s *blobStore) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	// Relative URL served back by the HTTP layer through Open.
	return "/api/uploads/" + key, nil
}

func (s *blobStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open blob %s", key)
	}

	return reader, nil
}
