package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/synapsehq/leaderboard-api/internal/model"
)

// MemberRepo provides data access to the members table.
type MemberRepo struct{ DB *sql.DB }

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{DB: db} }

// List returns all members ordered alphabetically by name.
func (r *MemberRepo) List(ctx context.Context) ([]model.Member, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,avatar FROM members ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Avatar); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// Create inserts a member and returns its ID. A violation of the unique
// name constraint is reported as ErrMemberExists.
func (r *MemberRepo) Create(ctx context.Context, name, avatar string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO members (name, avatar) VALUES (?,?)", name, avatar)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrMemberExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// DeleteWithStats removes a member together with all of its weekly and
// monthly stat rows as one transaction, so a concurrent stat upsert can
// never leave orphaned rows behind. It returns the deleted member's name
// for the audit trail, or ErrMemberNotFound when the id does not exist.
func (r *MemberRepo) DeleteWithStats(ctx context.Context, id uint64) (string, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var name string
	err = tx.QueryRowContext(ctx,
		"SELECT name FROM members WHERE id=? LIMIT 1", id).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrMemberNotFound
	}
	if err != nil {
		return "", err
	}

	if _, err = tx.ExecContext(ctx,
		"DELETE FROM weekly_leaderboard WHERE member_id=?", id); err != nil {
		return "", err
	}
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM monthly_leaderboard WHERE member_id=?", id); err != nil {
		return "", err
	}
	if _, err = tx.ExecContext(ctx,
		"DELETE FROM members WHERE id=?", id); err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return name, nil
}
