package ports

import (
	"context"
	"io"
)

// BlobStore abstracts the external object storage that holds upload
// payloads. The core only ever records the returned URL.
type BlobStore interface {
	// Put streams the payload under key and returns the public URL of the
	// stored object.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	// Remove deletes a previously stored object. Used as a compensating
	// action when the metadata write fails after the blob write succeeded.
	Remove(ctx context.Context, key string) error
}
