package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Delete removes a user by id. Returns domain.ErrUserNotFound when no
	// document matched.
	Delete(ctx context.Context, id string) error
}
