package domain

import "time"

// Session is the resolved identity of a request, reconstructed from a
// verified token. A session is Active until its expiry passes (Expired) or
// its token ID is revoked at logout (Revoked); both states are terminal.
type Session struct {
	UserID    string
	Name      string
	Role      Role
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the session belongs to an admin account.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
