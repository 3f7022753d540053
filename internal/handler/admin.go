// This file implements the session-gated admin endpoints: member
// management, stat upserts and deletes, and the audit trail listing. Each
// successful mutation emits exactly one audit entry.
package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/synapsehq/leaderboard-api/internal/model"
	"github.com/synapsehq/leaderboard-api/internal/repository"
	"github.com/synapsehq/leaderboard-api/internal/utils"
)

// AdminHandler bundles the stores needed by the protected endpoints.
type AdminHandler struct {
	Members  MemberStore
	Stats    StatStore
	Audit    AuditSink
	AuditLog AuditReader
}

func NewAdminHandler(members MemberStore, stats StatStore, audit AuditSink, auditLog AuditReader) *AdminHandler {
	return &AdminHandler{Members: members, Stats: stats, Audit: audit, AuditLog: auditLog}
}

type addMemberReq struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type upsertStatReq struct {
	MemberID             uint64 `json:"member_id"`
	SessionsAttended     int    `json:"sessions_attended"`
	AssessmentsSubmitted int    `json:"assessments_submitted"`
	BonusPoints          int    `json:"bonus_points"`
}

func (r upsertStatReq) validate() string {
	if r.MemberID == 0 {
		return "member_id is required"
	}
	if r.SessionsAttended < 0 || r.AssessmentsSubmitted < 0 || r.BonusPoints < 0 {
		return "stat values must be non-negative"
	}
	return ""
}

// AddMember handles POST /api/admin/members. When no avatar is supplied a
// deterministic one is derived from the name.
func (h *AdminHandler) AddMember(c echo.Context) error {
	var req addMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Name is required"})
	}
	avatar := req.Avatar
	if avatar == "" {
		avatar = utils.DefaultAvatarURL(req.Name)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Members.Create(ctx, req.Name, avatar)
	if err != nil {
		if err == repository.ErrMemberExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Member already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Create member failed"})
	}

	logAction(c, h.Audit, model.ActionAddMember, fmt.Sprintf("Added member: %s (ID: %d)", req.Name, id))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    model.Member{ID: id, Name: req.Name, Avatar: avatar},
	})
}

// DeleteMember handles DELETE /api/admin/members/:id. The member's weekly
// and monthly stat rows go with it, in one transaction.
func (h *AdminHandler) DeleteMember(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Member not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	name, err := h.Members.DeleteWithStats(ctx, id)
	if err != nil {
		if err == repository.ErrMemberNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Delete failed"})
	}

	logAction(c, h.Audit, model.ActionDeleteMember, fmt.Sprintf("Deleted member: %s (ID: %d)", name, id))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": fmt.Sprintf("Member %s deleted", name),
	})
}

// UpdateWeekly handles POST /api/admin/leaderboard/weekly/update. The
// three stat fields replace whatever the row held before; omitted fields
// default to zero.
func (h *AdminHandler) UpdateWeekly(c echo.Context) error {
	var req upsertStatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": msg})
	}
	weekStart := utils.CurrentWeekStart()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	name, err := h.Stats.UpsertWeekly(ctx, model.WeeklyStat{
		MemberID:             req.MemberID,
		SessionsAttended:     req.SessionsAttended,
		AssessmentsSubmitted: req.AssessmentsSubmitted,
		BonusPoints:          req.BonusPoints,
		WeekStart:            weekStart,
	})
	if err != nil {
		if err == repository.ErrMemberNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Update failed"})
	}

	logAction(c, h.Audit, model.ActionUpdateWeekly, fmt.Sprintf("Updated weekly stats for %s", name))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Weekly leaderboard updated"})
}

// UpdateMonthly handles POST /api/admin/leaderboard/monthly/update.
func (h *AdminHandler) UpdateMonthly(c echo.Context) error {
	var req upsertStatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": "Invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "error": msg})
	}
	monthYear := utils.CurrentMonthKey()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	name, err := h.Stats.UpsertMonthly(ctx, model.MonthlyStat{
		MemberID:             req.MemberID,
		SessionsAttended:     req.SessionsAttended,
		AssessmentsSubmitted: req.AssessmentsSubmitted,
		BonusPoints:          req.BonusPoints,
		MonthYear:            monthYear,
	})
	if err != nil {
		if err == repository.ErrMemberNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Update failed"})
	}

	logAction(c, h.Audit, model.ActionUpdateMonthly, fmt.Sprintf("Updated monthly stats for %s", name))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Monthly leaderboard updated"})
}

// DeleteWeeklyEntry handles DELETE /api/admin/leaderboard/weekly/:member_id.
// Only the current week's row is deleted; older weeks stay untouched.
func (h *AdminHandler) DeleteWeeklyEntry(c echo.Context) error {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Entry not found"})
	}
	weekStart := utils.CurrentWeekStart()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Stats.DeleteWeekly(ctx, memberID, weekStart); err != nil {
		if err == repository.ErrEntryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Delete failed"})
	}

	logAction(c, h.Audit, model.ActionDeleteWeekly, fmt.Sprintf("Deleted weekly stats for member ID %d", memberID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Weekly leaderboard entry deleted"})
}

// DeleteMonthlyEntry handles DELETE /api/admin/leaderboard/monthly/:member_id.
func (h *AdminHandler) DeleteMonthlyEntry(c echo.Context) error {
	memberID, err := strconv.ParseUint(c.Param("member_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Entry not found"})
	}
	monthYear := utils.CurrentMonthKey()

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Stats.DeleteMonthly(ctx, memberID, monthYear); err != nil {
		if err == repository.ErrEntryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"success": false, "error": "Entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Delete failed"})
	}

	logAction(c, h.Audit, model.ActionDeleteMonthly, fmt.Sprintf("Deleted monthly stats for member ID %d", memberID))

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Monthly leaderboard entry deleted"})
}

// GetAuditLog handles GET /api/admin/audit, newest entries first. The
// optional ?limit query parameter defaults to 50 and caps at 200.
func (h *AdminHandler) GetAuditLog(c echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > 200 {
		limit = 200
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.AuditLog.Recent(ctx, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "error": "Query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": entries})
}
