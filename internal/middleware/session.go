package middleware // middleware provides shared request processing for handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/session"
)

// CookieName is the cookie the session token travels in.
const CookieName = "synapse_session"

// Context keys under which the resolved session and its raw token are
// stashed for handlers.
const (
	sessionKey = "session"
	tokenKey   = "session_token"
)

// SessionAuth returns an Echo middleware that gates protected routes. It
// accepts the session token from the cookie or an Authorization bearer
// header, resolves it against the server-side store and stashes the
// session in the request context. Requests without a valid session are
// rejected with the AUTH_REQUIRED error envelope and never reach the
// handler.
func SessionAuth(mgr *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return authRequired(c)
			}
			sess, err := mgr.Resolve(c.Request().Context(), token)
			if err != nil {
				return authRequired(c)
			}
			c.Set(sessionKey, sess)
			c.Set(tokenKey, token)
			return next(c)
		}
	}
}

func authRequired(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"success": false,
		"error":   "Authentication required",
		"code":    "AUTH_REQUIRED",
	})
}

// TokenFromRequest extracts the session token, preferring the cookie and
// falling back to a bearer Authorization header for non-browser clients.
func TokenFromRequest(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// CurrentSession returns the session stored by SessionAuth, if any.
func CurrentSession(c echo.Context) (session.Session, bool) {
	s, ok := c.Get(sessionKey).(session.Session)
	return s, ok
}

// CurrentToken returns the raw token stored by SessionAuth, if any.
func CurrentToken(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}
