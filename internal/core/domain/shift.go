package domain

import "time"

// Shift is a work assignment owned by one user. Shifts are created and
// deleted by admins only; the owning user may read their own.
// Invariant: StartTime < EndTime.
type Shift struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidTimeRange reports whether the shift's time window is well formed.
func (s Shift) ValidTimeRange() bool {
	return s.StartTime.Before(s.EndTime)
}
