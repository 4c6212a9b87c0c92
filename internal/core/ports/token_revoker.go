package ports

import (
	"context"
	"time"
)

// TokenRevoker tracks revoked token IDs so that logout terminates a session
// before its natural expiry. Entries only need to live as long as the token
// itself would.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
