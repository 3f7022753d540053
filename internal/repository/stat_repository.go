package repository

import (
	"context"
	"database/sql"

	"github.com/synapsehq/leaderboard-api/internal/model"
)

// StatRepo provides data access to the weekly_leaderboard and
// monthly_leaderboard tables. The two tables are symmetric except for
// their period key column (week_start DATE vs month_year "YYYY-MM"), so
// each operation exists in a weekly and a monthly variant sharing one
// implementation parameterized on table and key column.
type StatRepo struct{ DB *sql.DB }

func NewStatRepo(db *sql.DB) *StatRepo { return &StatRepo{DB: db} }

// UpsertWeekly inserts or replaces the stat row for (member, week). The
// member existence check and the write run in one transaction. Returns
// the member's name for the audit trail, or ErrMemberNotFound.
func (r *StatRepo) UpsertWeekly(ctx context.Context, s model.WeeklyStat) (string, error) {
	return r.upsert(ctx, "weekly_leaderboard", "week_start", s.WeekStart,
		s.MemberID, s.SessionsAttended, s.AssessmentsSubmitted, s.BonusPoints)
}

// UpsertMonthly is the monthly counterpart of UpsertWeekly.
func (r *StatRepo) UpsertMonthly(ctx context.Context, s model.MonthlyStat) (string, error) {
	return r.upsert(ctx, "monthly_leaderboard", "month_year", s.MonthYear,
		s.MemberID, s.SessionsAttended, s.AssessmentsSubmitted, s.BonusPoints)
}

func (r *StatRepo) upsert(ctx context.Context, table, keyCol, key string,
	memberID uint64, sessions, assessments, bonus int) (string, error) {

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	var name string
	err = tx.QueryRowContext(ctx,
		"SELECT name FROM members WHERE id=? LIMIT 1", memberID).Scan(&name)
	if err == sql.ErrNoRows {
		return "", ErrMemberNotFound
	}
	if err != nil {
		return "", err
	}

	// Insert-or-replace on the (member_id, period) unique key. The three
	// numeric fields are fully replaced, not incremented.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO `+table+` (member_id, sessions_attended, assessments_submitted, bonus_points, `+keyCol+`)
		 VALUES (?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   sessions_attended=VALUES(sessions_attended),
		   assessments_submitted=VALUES(assessments_submitted),
		   bonus_points=VALUES(bonus_points)`,
		memberID, sessions, assessments, bonus, key)
	if err != nil {
		return "", err
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	return name, nil
}

// DeleteWeekly removes the stat row for (member, week). Returns
// ErrEntryNotFound when no row exists for that key.
func (r *StatRepo) DeleteWeekly(ctx context.Context, memberID uint64, weekStart string) error {
	return r.delete(ctx, "weekly_leaderboard", "week_start", memberID, weekStart)
}

// DeleteMonthly removes the stat row for (member, month).
func (r *StatRepo) DeleteMonthly(ctx context.Context, memberID uint64, monthYear string) error {
	return r.delete(ctx, "monthly_leaderboard", "month_year", memberID, monthYear)
}

func (r *StatRepo) delete(ctx context.Context, table, keyCol string, memberID uint64, key string) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM "+table+" WHERE member_id=? AND "+keyCol+"=?", memberID, key)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// WeeklyLeaderboard returns every member with that week's stats, absent
// rows coalesced to zero, ordered by computed score descending. Ties are
// broken by member id ascending so the order is fully deterministic.
func (r *StatRepo) WeeklyLeaderboard(ctx context.Context, weekStart string) ([]model.LeaderboardEntry, error) {
	return r.leaderboard(ctx, "weekly_leaderboard", "week_start", weekStart)
}

// MonthlyLeaderboard is the monthly counterpart of WeeklyLeaderboard.
func (r *StatRepo) MonthlyLeaderboard(ctx context.Context, monthYear string) ([]model.LeaderboardEntry, error) {
	return r.leaderboard(ctx, "monthly_leaderboard", "month_year", monthYear)
}

func (r *StatRepo) leaderboard(ctx context.Context, table, keyCol, key string) ([]model.LeaderboardEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT m.id, m.name, m.avatar,
		        COALESCE(s.sessions_attended, 0),
		        COALESCE(s.assessments_submitted, 0),
		        COALESCE(s.bonus_points, 0)
		 FROM members m
		 LEFT JOIN `+table+` s ON m.id = s.member_id AND s.`+keyCol+` = ?
		 ORDER BY (COALESCE(s.sessions_attended, 0) * 10 +
		           COALESCE(s.assessments_submitted, 0) * 20 +
		           COALESCE(s.bonus_points, 0)) DESC,
		          m.id ASC`,
		key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []model.LeaderboardEntry{}
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Avatar,
			&e.SessionsAttended, &e.AssessmentsSubmitted, &e.BonusPoints); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
