package ports

import (
	"context"
	"time"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// CreateMessageInput carries a new message. UserID is optional: empty means
// the message is authored by the caller; only admins may set it to another
// account.
type CreateMessageInput struct {
	Content string
	UserID  string
}

// MessageView is a message joined with its author's display name for the
// admin inbox.
type MessageView struct {
	ID         string
	UserID     string
	AuthorName string
	Content    string
	CreatedAt  time.Time
}

// MessageService defines message operations. Messages are immutable, so
// there is no update or single delete.
type MessageService interface {
	Create(ctx context.Context, sess *domain.Session, in CreateMessageInput) (*domain.Message, error)
	// List returns the admin inbox: all messages with author names.
	List(ctx context.Context, sess *domain.Session) ([]MessageView, error)
}
