package model

import (
	"context"
	"io"
)

// Storage uploads objects to an S3-compatible bucket.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}
