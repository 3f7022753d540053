package handler

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/middleware"
	"github.com/synapsehq/leaderboard-api/internal/model"
	"github.com/synapsehq/leaderboard-api/internal/session"
	"github.com/synapsehq/leaderboard-api/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Admins   AdminStore
	Sessions *session.Manager
	Audit    AuditSink
}

func NewAuthHandler(admins AdminStore, sessions *session.Manager, audit AuditSink) *AuthHandler {
	return &AuthHandler{Admins: admins, Sessions: sessions, Audit: audit}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. A missing or unknown username and a
// wrong password are reported identically so the response does not reveal
// which accounts exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Username and password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Login failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "error": "Invalid credentials"})
	}

	token, err := h.Sessions.Create(ctx, session.Session{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Login failed"})
	}
	c.SetCookie(sessionCookie(token, h.Sessions.TTL()))

	// The session was just created, so the gate has not stashed it yet;
	// record the actor explicitly.
	_ = h.Audit.Record(ctx, u.Username, model.ActionLogin, fmt.Sprintf("User %s logged in", u.Username))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    echo.Map{"username": u.Username, "role": u.Role},
	})
}

// Logout handles POST /api/auth/logout (protected). It revokes the
// server-side session and expires the cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, _ := middleware.CurrentSession(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Sessions.Destroy(ctx, middleware.CurrentToken(c)); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Logout failed"})
	}
	c.SetCookie(sessionCookie("", -time.Hour))

	logAction(c, h.Audit, model.ActionLogout, fmt.Sprintf("User %s logged out", sess.Username))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Logged out"})
}

// Status handles GET /api/auth/status. It never fails: an absent or
// invalid session simply reports authenticated=false.
func (h *AuthHandler) Status(c echo.Context) error {
	token := middleware.TokenFromRequest(c)
	if token == "" {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "authenticated": false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.Sessions.Resolve(ctx, token)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"success": true, "authenticated": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"authenticated": true,
		"user":          echo.Map{"username": sess.Username, "role": sess.Role},
	})
}

func sessionCookie(token string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
