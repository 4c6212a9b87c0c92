package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wachwerk/staffdesk/internal/api/metrics"
	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/policy"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// MessageService implements the admin inbox. Messages are append-only.
type MessageService struct {
	messages ports.MessageRepository
	users    ports.UserRepository
	log      zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, users ports.UserRepository, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, users: users, log: log}
}

// Create records a message. The author defaults to the caller; only admins
// may attribute a message to another existing account.
func (s *MessageService) Create(ctx context.Context, sess *domain.Session, in ports.CreateMessageInput) (*domain.Message, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	author := in.UserID
	if author == "" && sess != nil {
		author = sess.UserID
	}

	if err := policy.Authorize(sess, policy.OpCreate, policy.ResourceMessage, author).Err(sess); err != nil {
		return nil, err
	}

	if sess != nil && author != sess.UserID {
		if _, err := s.users.FindByID(ctx, author); err != nil {
			return nil, err
		}
	}

	created, err := s.messages.Create(ctx, &domain.Message{
		UserID:    author,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", author).Msg("failed to create message")
		return nil, err
	}

	metrics.MessagesCreatedTotal.Inc()
	s.log.Info().Str("message_id", created.ID).Str("user_id", created.UserID).Msg("message created")

	return created, nil
}

// List returns the admin inbox: every message with its author's name. The
// empty owner argument makes the policy engine reject non-admin callers.
func (s *MessageService) List(ctx context.Context, sess *domain.Session) ([]ports.MessageView, error) {
	if err := policy.Authorize(sess, policy.OpRead, policy.ResourceMessage, "").Err(sess); err != nil {
		return nil, err
	}

	msgs, err := s.messages.List(ctx)
	if err != nil {
		return nil, err
	}

	names, err := userNames(ctx, s.users)
	if err != nil {
		return nil, err
	}

	views := make([]ports.MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, ports.MessageView{
			ID:         m.ID,
			UserID:     m.UserID,
			AuthorName: names[m.UserID],
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		})
	}
	return views, nil
}
