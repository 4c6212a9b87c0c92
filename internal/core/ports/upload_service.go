package ports

import (
	"context"
	"io"
	"time"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// CreateUploadInput carries a file upload. UserID is optional: empty means
// the upload belongs to the caller; only admins may set it to another
// account. Content is streamed to object storage within the request.
type CreateUploadInput struct {
	UserID      string
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadView is an upload record joined with its owner's display name for
// admin review.
type UploadView struct {
	ID         string
	UserID     string
	OwnerName  string
	Filename   string
	StorageURL string
	CreatedAt  time.Time
}

// UploadService defines upload operations. Deletion of individual uploads
// is not supported.
type UploadService interface {
	Create(ctx context.Context, sess *domain.Session, in CreateUploadInput) (*domain.Upload, error)
	List(ctx context.Context, sess *domain.Session) ([]UploadView, error)
}
