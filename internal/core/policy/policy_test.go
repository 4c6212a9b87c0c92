package policy

import (
	"testing"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

func adminSession() *domain.Session {
	return &domain.Session{UserID: "a1", Role: domain.RoleAdmin}
}

func userSession(id string) *domain.Session {
	return &domain.Session{UserID: id, Role: domain.RoleUser}
}

func TestAuthorize_NilSessionDeniedEverywhere(t *testing.T) {
	for _, res := range []Resource{ResourceUser, ResourceShift, ResourceMessage, ResourceUpload} {
		for _, op := range []Operation{OpRead, OpCreate, OpDelete} {
			if d := Authorize(nil, op, res, "u1"); d.Allowed {
				t.Fatalf("nil session allowed %s %s", op, res)
			}
		}
	}
}

func TestAuthorize_AdminAllowedEverywhere(t *testing.T) {
	sess := adminSession()
	for _, res := range []Resource{ResourceUser, ResourceShift, ResourceMessage, ResourceUpload} {
		for _, op := range []Operation{OpRead, OpCreate, OpDelete} {
			if d := Authorize(sess, op, res, "someone-else"); !d.Allowed {
				t.Fatalf("admin denied %s %s: %s", op, res, d.Reason)
			}
		}
	}
}

func TestAuthorize_UserNeverManagesAccounts(t *testing.T) {
	sess := userSession("u1")
	for _, op := range []Operation{OpRead, OpCreate, OpDelete} {
		if d := Authorize(sess, op, ResourceUser, "u1"); d.Allowed {
			t.Fatalf("user allowed %s on accounts", op)
		}
	}
}

func TestAuthorize_UserOwnShifts(t *testing.T) {
	sess := userSession("u1")

	if d := Authorize(sess, OpRead, ResourceShift, "u1"); !d.Allowed {
		t.Fatalf("user denied reading own shift: %s", d.Reason)
	}
	if d := Authorize(sess, OpRead, ResourceShift, "u2"); d.Allowed {
		t.Fatalf("user allowed reading another user's shift")
	}
	// Shifts are admin-assigned; even the owner cannot create or delete.
	if d := Authorize(sess, OpCreate, ResourceShift, "u1"); d.Allowed {
		t.Fatalf("user allowed creating own shift")
	}
	if d := Authorize(sess, OpDelete, ResourceShift, "u1"); d.Allowed {
		t.Fatalf("user allowed deleting own shift")
	}
}

func TestAuthorize_UserOwnMessagesAndUploads(t *testing.T) {
	sess := userSession("u1")

	for _, res := range []Resource{ResourceMessage, ResourceUpload} {
		if d := Authorize(sess, OpCreate, res, "u1"); !d.Allowed {
			t.Fatalf("user denied creating own %s: %s", res, d.Reason)
		}
		if d := Authorize(sess, OpRead, res, "u1"); !d.Allowed {
			t.Fatalf("user denied reading own %s: %s", res, d.Reason)
		}
		if d := Authorize(sess, OpCreate, res, "u2"); d.Allowed {
			t.Fatalf("user allowed creating %s for another user", res)
		}
		if d := Authorize(sess, OpDelete, res, "u1"); d.Allowed {
			t.Fatalf("user allowed deleting own %s", res)
		}
	}
}

func TestDecision_Err(t *testing.T) {
	if err := Authorize(adminSession(), OpRead, ResourceUser, "").Err(adminSession()); err != nil {
		t.Fatalf("allow produced error: %v", err)
	}
	if err := Authorize(nil, OpRead, ResourceShift, "u1").Err(nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	sess := userSession("u1")
	if err := Authorize(sess, OpDelete, ResourceShift, "u1").Err(sess); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
