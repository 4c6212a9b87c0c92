// Package policy implements the authorization decision function. It is
// transport-free: callers hand it a resolved session, an operation and a
// resource, and get back an allow/deny decision. Services consult it before
// every read or mutation; the HTTP route guard is only a coarse outer gate.
package policy

import (
	"fmt"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// Operation is the kind of access being requested.
type Operation string

const (
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpDelete Operation = "delete"
)

// Resource is the kind of entity being accessed.
type Resource string

const (
	ResourceUser    Resource = "user"
	ResourceShift   Resource = "shift"
	ResourceMessage Resource = "message"
	ResourceUpload  Resource = "upload"
)

// Decision is the outcome of an authorization check. Reason is for logs and
// error context only; it is never shown verbatim to end users.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(format string, args ...any) Decision {
	return Decision{Allowed: false, Reason: fmt.Sprintf(format, args...)}
}

// Authorize decides whether sess may perform op on a resource owned by
// ownerID. Rules are evaluated in order, first match wins:
//
//  1. No session → deny.
//  2. Admins may do everything defined here.
//  3. Users never touch account records.
//  4. Users may read their own shifts and read/create their own messages
//     and uploads; shift create/delete stays admin-only even for the owner.
//  5. Everything else is denied.
//
// A deny with a valid session maps to 403 at the boundary, a deny without
// one to 401 — list results are never silently filtered down instead.
func Authorize(sess *domain.Session, op Operation, res Resource, ownerID string) Decision {
	if sess == nil {
		return deny("no session")
	}

	switch sess.Role {
	case domain.RoleAdmin:
		return allow()

	case domain.RoleUser:
		if res == ResourceUser {
			return deny("role %s may not manage accounts", sess.Role)
		}
		if ownerID != sess.UserID {
			return deny("resource owned by another user")
		}
		switch res {
		case ResourceShift:
			if op == OpRead {
				return allow()
			}
			return deny("shifts are assigned by admins only")
		case ResourceMessage, ResourceUpload:
			if op == OpRead || op == OpCreate {
				return allow()
			}
			return deny("%s %s is not permitted", op, res)
		}
	}

	return deny("no rule allows %s %s for role %q", op, res, sess.Role)
}

// Err converts a deny decision into the sentinel error the transport maps
// to 401/403. Returns nil for an allow.
func (d Decision) Err(sess *domain.Session) error {
	if d.Allowed {
		return nil
	}
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	return domain.ErrForbidden
}
