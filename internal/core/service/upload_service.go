package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wachwerk/staffdesk/internal/api/metrics"
	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/policy"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// UploadService streams files to external object storage and records their
// metadata. Individual uploads cannot be deleted; listing is admin-only.
type UploadService struct {
	uploads ports.UploadRepository
	users   ports.UserRepository
	blobs   ports.BlobStore
	log     zerolog.Logger
}

func NewUploadService(uploads ports.UploadRepository, users ports.UserRepository, blobs ports.BlobStore, log zerolog.Logger) *UploadService {
	return &UploadService{uploads: uploads, users: users, blobs: blobs, log: log}
}

// Create writes the payload to object storage, then the metadata record.
// If the metadata write fails after the blob write succeeded, the blob is
// removed again best-effort so no orphan survives the request.
func (s *UploadService) Create(ctx context.Context, sess *domain.Session, in ports.CreateUploadInput) (*domain.Upload, error) {
	if in.Filename == "" {
		return nil, domain.ErrEmptyFilename
	}

	owner := in.UserID
	if owner == "" && sess != nil {
		owner = sess.UserID
	}

	if err := policy.Authorize(sess, policy.OpCreate, policy.ResourceUpload, owner).Err(sess); err != nil {
		return nil, err
	}

	if sess != nil && owner != sess.UserID {
		if _, err := s.users.FindByID(ctx, owner); err != nil {
			return nil, err
		}
	}

	// Object keys get a UUID prefix so two staff members uploading
	// "report.pdf" never collide.
	key := uuid.NewString() + "-" + in.Filename

	url, err := s.blobs.Put(ctx, key, in.Content, in.Size, in.ContentType)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("blob_error").Inc()
		return nil, fmt.Errorf("store blob: %w", err)
	}

	created, err := s.uploads.Create(ctx, &domain.Upload{
		UserID:     owner,
		Filename:   in.Filename,
		StorageURL: url,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		if rmErr := s.blobs.Remove(ctx, key); rmErr != nil {
			s.log.Warn().Err(rmErr).Str("key", key).Msg("orphaned blob left behind after metadata failure")
		}
		metrics.UploadsTotal.WithLabelValues("metadata_error").Inc()
		return nil, fmt.Errorf("store upload metadata: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	metrics.UploadBytesTotal.Add(float64(in.Size))
	s.log.Info().Str("upload_id", created.ID).Str("user_id", owner).Str("filename", in.Filename).Msg("upload stored")

	return created, nil
}

// List returns every upload with its owner's name for admin review.
func (s *UploadService) List(ctx context.Context, sess *domain.Session) ([]ports.UploadView, error) {
	if err := policy.Authorize(sess, policy.OpRead, policy.ResourceUpload, "").Err(sess); err != nil {
		return nil, err
	}

	ups, err := s.uploads.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := userNames(ctx, s.users)
	if err != nil {
		return nil, err
	}

	views := make([]ports.UploadView, 0, len(ups))
	for _, u := range ups {
		views = append(views, ports.UploadView{
			ID:         u.ID,
			UserID:     u.UserID,
			OwnerName:  names[u.UserID],
			Filename:   u.Filename,
			StorageURL: u.StorageURL,
			CreatedAt:  u.CreatedAt,
		})
	}
	return views, nil
}
