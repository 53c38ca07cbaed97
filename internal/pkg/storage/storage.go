package storage

import (
	"context"
	"io"
	"time"
)

// Object describes a stored blob.
type Object struct {
	// Key is the object name inside the bucket.
	Key string
	// ContentType is the MIME type recorded at upload time.
	ContentType string
	// Size is the object size in bytes.
	Size int64
}

// Storage is an object-store abstraction for binary blobs such as book
// cover images.
type Storage interface {
	// Upload stores the reader's content under key and returns the object
	// metadata.
	Upload(ctx context.Context, key, contentType string, size int64, r io.Reader) (Object, error)

	// PresignedURL returns a time-limited URL for downloading the object.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
