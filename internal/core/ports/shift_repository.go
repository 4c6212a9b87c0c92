package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// ShiftRepository defines persistence operations for shifts.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	// List returns shifts scoped to userID; an empty userID returns all
	// shifts (admin view). Scoping is decided by the service layer, never
	// by the repository.
	List(ctx context.Context, userID string) ([]*domain.Shift, error)
	// Delete removes a shift by id. Returns domain.ErrShiftNotFound when no
	// document matched.
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes all shifts owned by userID (principal cascade).
	DeleteByUser(ctx context.Context, userID string) error
}
