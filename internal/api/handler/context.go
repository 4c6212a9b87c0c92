package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wachwerk/staffdesk/internal/api/middleware"
	"github.com/wachwerk/staffdesk/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware. A
// missing session on a guarded route means the middleware did not run or
// was bypassed; fail closed with 401.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess, _ := c.Get(middleware.SessionKey).(*domain.Session)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}
