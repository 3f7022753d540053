// This file implements the unauthenticated read endpoints: the member
// directory and the ranked weekly/monthly leaderboards. Leaderboard reads
// resolve the period key exactly once per request so a request straddling
// a week or month boundary stays internally consistent.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/utils"
)

// PublicHandler bundles the stores needed by the public read endpoints.
type PublicHandler struct {
	Members MemberStore
	Stats   StatStore
}

func NewPublicHandler(members MemberStore, stats StatStore) *PublicHandler {
	return &PublicHandler{Members: members, Stats: stats}
}

// GetMembers handles GET /api/members, alphabetical by name.
func (h *PublicHandler) GetMembers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	members, err := h.Members.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": members})
}

// GetWeeklyLeaderboard handles GET /api/leaderboard/weekly. Every member
// appears exactly once; members without a stat row for the current week
// rank with zero points.
func (h *PublicHandler) GetWeeklyLeaderboard(c echo.Context) error {
	weekStart := utils.CurrentWeekStart()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Stats.WeeklyLeaderboard(ctx, weekStart)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Query failed"})
	}
	for i := range entries {
		entries[i].TotalPoints = utils.Score(
			entries[i].SessionsAttended,
			entries[i].AssessmentsSubmitted,
			entries[i].BonusPoints,
		)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"type":       "weekly",
		"week_start": weekStart,
		"data":       entries,
	})
}

// GetMonthlyLeaderboard handles GET /api/leaderboard/monthly, keyed by the
// current "YYYY-MM" month.
func (h *PublicHandler) GetMonthlyLeaderboard(c echo.Context) error {
	monthYear := utils.CurrentMonthKey()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Stats.MonthlyLeaderboard(ctx, monthYear)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Query failed"})
	}
	for i := range entries {
		entries[i].TotalPoints = utils.Score(
			entries[i].SessionsAttended,
			entries[i].AssessmentsSubmitted,
			entries[i].BonusPoints,
		)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"type":       "monthly",
		"month_year": monthYear,
		"data":       entries,
	})
}
