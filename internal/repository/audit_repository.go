package repository

import (
	"context"
	"database/sql"

	"github.com/synapsehq/leaderboard-api/internal/model"
)

// AuditRepo appends to the audit_log table. Rows are never updated or
// deleted by the application.
type AuditRepo struct{ DB *sql.DB }

func NewAuditRepo(db *sql.DB) *AuditRepo { return &AuditRepo{DB: db} }

// Insert appends one audit entry. The timestamp column defaults to the
// database clock.
func (r *AuditRepo) Insert(ctx context.Context, actor, action, details string) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO audit_log (admin_username, action, details) VALUES (?,?,?)",
		actor, action, details)
	return err
}

// Recent returns the newest entries up to limit, newest first. Backs the
// protected audit-trail listing endpoint.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,admin_username,action,details,timestamp FROM audit_log ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.AuditEntry{}
	for rows.Next() {
		var e model.AuditEntry
		var details sql.NullString
		if err := rows.Scan(&e.ID, &e.AdminUsername, &e.Action, &details, &e.Timestamp); err != nil {
			return nil, err
		}
		e.Details = details.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
