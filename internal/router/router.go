package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/handler"
	"github.com/synapsehq/leaderboard-api/internal/middleware"
	"github.com/synapsehq/leaderboard-api/internal/session"
)

// RegisterRoutes registers routes that need no handler state. Currently
// that is only the health check at /api/health.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the authentication routes. Login is wrapped in
// the rate limiter (pass nil to disable); logout sits behind the session
// gate so an unauthenticated call never reaches the handler.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, mgr *session.Manager, loginLimit echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	if loginLimit != nil {
		g.POST("/login", a.Login, loginLimit)
	} else {
		g.POST("/login", a.Login)
	}
	g.POST("/logout", a.Logout, middleware.SessionAuth(mgr))
	g.GET("/status", a.Status)
}

// RegisterPublic registers the unauthenticated read endpoints: the member
// directory and both leaderboards.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
	e.GET("/api/members", p.GetMembers)
	e.GET("/api/leaderboard/weekly", p.GetWeeklyLeaderboard)
	e.GET("/api/leaderboard/monthly", p.GetMonthlyLeaderboard)
}

// RegisterAdmin registers every mutating endpoint under /api/admin behind
// the session gate.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, mgr *session.Manager) {
	g := e.Group("/api/admin", middleware.SessionAuth(mgr))
	g.POST("/members", h.AddMember)
	g.DELETE("/members/:id", h.DeleteMember)
	g.POST("/leaderboard/weekly/update", h.UpdateWeekly)
	g.DELETE("/leaderboard/weekly/:member_id", h.DeleteWeeklyEntry)
	g.POST("/leaderboard/monthly/update", h.UpdateMonthly)
	g.DELETE("/leaderboard/monthly/:member_id", h.DeleteMonthlyEntry)
	g.GET("/audit", h.GetAuditLog)
}
