package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// UploadRepository defines persistence operations for upload metadata.
// The binary payload lives in object storage (BlobStore), not here.
type UploadRepository interface {
	Create(ctx context.Context, up *domain.Upload) (*domain.Upload, error)
	List(ctx context.Context) ([]*domain.Upload, error)
	// DeleteByUser removes all upload records owned by userID (principal cascade).
	DeleteByUser(ctx context.Context, userID string) error
}
