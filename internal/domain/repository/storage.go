package repository

import (
	"context"
	"io"
)

// ObjectStorage defines the blob-store collaborator used by the asset
// lifecycle. Implementations are provided by the infrastructure layer
// (e.g., MinIO, S3).
type ObjectStorage interface {
	// Put stores a blob under a generated key and returns its public
	// URL. The URL is what gets persisted on the video record.
	Put(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)

	// Delete removes a previously stored blob by its public URL. Used
	// both for owner-initiated deletion and for compensating actions
	// after a failed upload saga.
	Delete(ctx context.Context, url string) error

	// Exists checks whether a blob is still present.
	Exists(ctx context.Context, url string) (bool, error)
}
