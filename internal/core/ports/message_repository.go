package ports

import (
	"context"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// MessageRepository defines persistence operations for messages. Messages
// are append-only; there is deliberately no update and no single delete.
type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	List(ctx context.Context) ([]*domain.Message, error)
	// DeleteByUser removes all messages authored by userID (principal cascade).
	DeleteByUser(ctx context.Context, userID string) error
}
