package ports

import (
	"context"
	"time"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// CreateShiftInput carries all data needed to assign a shift.
type CreateShiftInput struct {
	UserID    string
	StartTime time.Time
	EndTime   time.Time
	Location  string
}

// ShiftView is a shift joined with its owner's display name for admin
// listings. OwnerName is empty in the self-scoped user view.
type ShiftView struct {
	ID        string
	UserID    string
	OwnerName string
	StartTime time.Time
	EndTime   time.Time
	Location  string
	CreatedAt time.Time
}

// ShiftService defines shift lifecycle operations.
type ShiftService interface {
	// List returns all shifts for admins, or the caller's own shifts for
	// users. A user requesting another user's shifts gets
	// domain.ErrForbidden, never a silently empty result.
	List(ctx context.Context, sess *domain.Session, userID string) ([]ShiftView, error)
	Create(ctx context.Context, sess *domain.Session, in CreateShiftInput) (*domain.Shift, error)
	Delete(ctx context.Context, sess *domain.Session, id string) error
}
