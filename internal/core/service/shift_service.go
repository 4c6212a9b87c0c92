package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/wachwerk/staffdesk/internal/api/metrics"
	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/policy"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// ShiftService implements shift assignment and listing. Shifts are created
// and deleted by admins only; users read their own.
type ShiftService struct {
	shifts ports.ShiftRepository
	users  ports.UserRepository
	log    zerolog.Logger
}

func NewShiftService(shifts ports.ShiftRepository, users ports.UserRepository, log zerolog.Logger) *ShiftService {
	return &ShiftService{shifts: shifts, users: users, log: log}
}

// List returns shifts visible to the caller. Admins see every shift (with
// owner names), optionally narrowed by userID. Users are scoped to their
// own shifts; asking for someone else's is a hard Forbidden rather than an
// empty page, so a denied caller can never mistake "no access" for "no data".
func (s *ShiftService) List(ctx context.Context, sess *domain.Session, userID string) ([]ports.ShiftView, error) {
	if sess != nil && sess.Role == domain.RoleAdmin {
		shifts, err := s.shifts.List(ctx, userID)
		if err != nil {
			return nil, err
		}
		names, err := userNames(ctx, s.users)
		if err != nil {
			return nil, err
		}
		return shiftViews(shifts, names), nil
	}

	target := userID
	if sess != nil && target == "" {
		target = sess.UserID
	}
	if err := policy.Authorize(sess, policy.OpRead, policy.ResourceShift, target).Err(sess); err != nil {
		return nil, err
	}

	shifts, err := s.shifts.List(ctx, target)
	if err != nil {
		return nil, err
	}
	return shiftViews(shifts, nil), nil
}

// Create assigns a shift to an existing user. A malformed time window and a
// nonexistent owner are both invalid input, not a lookup miss.
func (s *ShiftService) Create(ctx context.Context, sess *domain.Session, in ports.CreateShiftInput) (*domain.Shift, error) {
	if err := policy.Authorize(sess, policy.OpCreate, policy.ResourceShift, in.UserID).Err(sess); err != nil {
		return nil, err
	}

	shift := &domain.Shift{
		UserID:    in.UserID,
		StartTime: in.StartTime.UTC(),
		EndTime:   in.EndTime.UTC(),
		Location:  in.Location,
		CreatedAt: time.Now().UTC(),
	}
	if !shift.ValidTimeRange() {
		return nil, domain.ErrInvalidTimeRange
	}

	if _, err := s.users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownShiftOwner
		}
		return nil, err
	}

	created, err := s.shifts.Create(ctx, shift)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.UserID).Msg("failed to create shift")
		return nil, err
	}

	metrics.ShiftsCreatedTotal.Inc()
	s.log.Info().Str("shift_id", created.ID).Str("user_id", created.UserID).Msg("shift created")

	return created, nil
}

// Delete removes a shift. A missing id surfaces as ErrShiftNotFound and
// leaves the store untouched.
func (s *ShiftService) Delete(ctx context.Context, sess *domain.Session, id string) error {
	if err := policy.Authorize(sess, policy.OpDelete, policy.ResourceShift, "").Err(sess); err != nil {
		return err
	}

	if err := s.shifts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("shift_id", id).Msg("shift deleted")
	return nil
}

func shiftViews(shifts []*domain.Shift, names map[string]string) []ports.ShiftView {
	views := make([]ports.ShiftView, 0, len(shifts))
	for _, sh := range shifts {
		views = append(views, ports.ShiftView{
			ID:        sh.ID,
			UserID:    sh.UserID,
			OwnerName: names[sh.UserID],
			StartTime: sh.StartTime,
			EndTime:   sh.EndTime,
			Location:  sh.Location,
			CreatedAt: sh.CreatedAt,
		})
	}
	return views
}

// userNames loads the id → display-name mapping used to decorate admin
// listings.
func userNames(ctx context.Context, users ports.UserRepository) (map[string]string, error) {
	all, err := users.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(all))
	for _, u := range all {
		names[u.ID] = u.Name
	}
	return names, nil
}
