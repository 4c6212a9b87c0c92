package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/wachwerk/staffdesk/internal/core/domain"
	"github.com/wachwerk/staffdesk/internal/core/ports"
)

// SessionKey is the echo context key under which Auth stores the resolved
// *domain.Session.
const SessionKey = "session"

// Auth validates the bearer token and injects the resolved session into the
// request context. Expired tokens fail signature-level validation; revoked
// ones are rejected against the denylist, so logout terminates a session
// before its natural expiry.
func Auth(jwtSecret string, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sess, ok := sessionFromClaims(claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), sess.TokenID)
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session check failed")
			}
			if revoked {
				return echo.NewHTTPError(http.StatusUnauthorized, "session terminated")
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// sessionFromClaims rebuilds the session from verified token claims. The
// role must parse into the closed Role set; anything else is treated as an
// invalid token.
func sessionFromClaims(claims jwt.MapClaims) (*domain.Session, bool) {
	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	roleStr, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" || jti == "" {
		return nil, false
	}

	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return nil, false
	}

	sess := &domain.Session{
		UserID:  sub,
		Name:    name,
		Role:    role,
		TokenID: jti,
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		sess.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sess.ExpiresAt = exp.Time
	} else {
		// A token without expiry never validates; GetExpirationTime only
		// errors on a malformed claim.
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, false
	}

	return sess, true
}
