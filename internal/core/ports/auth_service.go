package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// AuthService implements login and logout.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	// Unknown email and wrong password yield the identical
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout revokes the session's token so it stops validating before its
	// natural expiry.
	Logout(ctx context.Context, sess *domain.Session) error
}
