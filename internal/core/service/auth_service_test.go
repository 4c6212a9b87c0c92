package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wachwerk/staffdesk/internal/core/domain"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("Carol", "carol@example.com", domain.RoleAdmin, mustHash(t, "s3cret99"))
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleAdmin) {
		t.Fatalf("expected role %s, got %v", domain.RoleAdmin, claims["role"])
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %s, got %v", user.ID, claims["sub"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected jti claim")
	}
}

// Unknown email and wrong password must be indistinguishable: same error
// value, hence the same message at the boundary.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	repo.add("Dave", "dave@example.com", domain.RoleUser, mustHash(t, "goodpass"))
	svc := NewAuthService(repo, newStubRevoker(), "secret", time.Hour, zerolog.Nop())

	_, _, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, _, noUser := svc.Login(context.Background(), "ghost@example.com", "badpass")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if noUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", noUser)
	}
	if wrongPass.Error() != noUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPass, noUser)
	}
}

func TestAuthService_Login_EmptyFields(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), newStubRevoker(), "secret", time.Hour, zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.c", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour, zerolog.Nop())

	sess := &domain.Session{
		UserID:    "u1",
		Role:      domain.RoleUser,
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}
	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	revoked, _ := revoker.IsRevoked(context.Background(), "jti-1")
	if !revoked {
		t.Fatalf("token not revoked")
	}
	if ttl := revoker.revoked["jti-1"]; ttl <= 0 || ttl > 30*time.Minute {
		t.Fatalf("unexpected revocation ttl: %v", ttl)
	}
}

func TestAuthService_Logout_ExpiredSessionIsNoop(t *testing.T) {
	revoker := newStubRevoker()
	svc := NewAuthService(newStubUserRepo(), revoker, "secret", time.Hour, zerolog.Nop())

	sess := &domain.Session{
		UserID:    "u1",
		TokenID:   "jti-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if len(revoker.revoked) != 0 {
		t.Fatalf("expired session should not be revoked")
	}
}
