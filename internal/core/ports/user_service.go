package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// CreateUserInput carries all data needed to register a staff account.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// UserService defines admin-only account management operations.
type UserService interface {
	List(ctx context.Context, sess *domain.Session) ([]*domain.User, error)
	Create(ctx context.Context, sess *domain.Session, in CreateUserInput) (*domain.User, error)
	// Delete removes the account and cascades over its owned shifts,
	// messages and uploads.
	Delete(ctx context.Context, sess *domain.Session, id string) error
}
