package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wachwerk/staffdesk/internal/api/metrics"
	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/policy"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// UserService implements admin-only account management. Deleting an account
// cascades over everything it owns: children are removed first, then the
// account itself, so a partial failure can never leave records pointing at
// a missing user.
type UserService struct {
	users    ports.UserRepository
	shifts   ports.ShiftRepository
	messages ports.MessageRepository
	uploads  ports.UploadRepository
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, shifts ports.ShiftRepository, messages ports.MessageRepository, uploads ports.UploadRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, shifts: shifts, messages: messages, uploads: uploads, log: log}
}

func (s *UserService) List(ctx context.Context, sess *domain.Session) ([]*domain.User, error) {
	if err := policy.Authorize(sess, policy.OpRead, policy.ResourceUser, "").Err(sess); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// Create registers a staff account. The password is hashed before it ever
// reaches the repository; the duplicate-email check is enforced by the
// store's unique index, not a racy read-then-write.
func (s *UserService) Create(ctx context.Context, sess *domain.Session, in ports.CreateUserInput) (*domain.User, error) {
	if err := policy.Authorize(sess, policy.OpCreate, policy.ResourceUser, "").Err(sess); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		s.log.Error().Err(err).Str("email", in.Email).Msg("failed to create user")
		return nil, err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(created.Role)).Inc()
	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")

	return created, nil
}

// Delete removes an account and everything it owns. Children go first so
// that no shift, message or upload is ever left referencing a deleted user.
func (s *UserService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := policy.Authorize(sess, policy.OpDelete, policy.ResourceUser, id).Err(sess); err != nil {
		return err
	}

	// An admin cannot remove the account backing their own session.
	if sess.UserID == id {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.shifts.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("cascade shifts: %w", err)
	}
	if err := s.messages.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("cascade messages: %w", err)
	}
	if err := s.uploads.DeleteByUser(ctx, id); err != nil {
		return fmt.Errorf("cascade uploads: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
