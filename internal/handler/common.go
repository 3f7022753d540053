package handler // handler defines http handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/middleware"
	"github.com/synapsehq/leaderboard-api/internal/model"
)

// The handlers depend on narrow store interfaces rather than the concrete
// repository types so they can be exercised against in-memory fakes. The
// repository package satisfies all of them.

// AdminStore resolves admin accounts for login.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (model.AdminUser, error)
}

// MemberStore covers member listing and admin member management.
type MemberStore interface {
	List(ctx context.Context) ([]model.Member, error)
	Create(ctx context.Context, name, avatar string) (uint64, error)
	DeleteWithStats(ctx context.Context, id uint64) (string, error)
}

// StatStore covers stat upserts, deletes and the ranked leaderboard reads.
type StatStore interface {
	UpsertWeekly(ctx context.Context, s model.WeeklyStat) (string, error)
	UpsertMonthly(ctx context.Context, s model.MonthlyStat) (string, error)
	DeleteWeekly(ctx context.Context, memberID uint64, weekStart string) error
	DeleteMonthly(ctx context.Context, memberID uint64, monthYear string) error
	WeeklyLeaderboard(ctx context.Context, weekStart string) ([]model.LeaderboardEntry, error)
	MonthlyLeaderboard(ctx context.Context, monthYear string) ([]model.LeaderboardEntry, error)
}

// AuditSink records one mutating action. Implementations are best-effort
// and must not fail the surrounding operation.
type AuditSink interface {
	Record(ctx context.Context, actor, action, details string) error
}

// AuditReader lists recent audit entries for the admin inspection endpoint.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]model.AuditEntry, error)
}

// logAction writes an audit entry for the current request. The actor is
// the authenticated admin, or "system" on requests outside the session
// gate. Errors are ignored; the sink already logs them.
func logAction(c echo.Context, sink AuditSink, action, details string) {
	actor := "system"
	if s, ok := middleware.CurrentSession(c); ok {
		actor = s.Username
	}
	_ = sink.Record(c.Request().Context(), actor, action, details)
}
