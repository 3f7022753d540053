package database

import (
	"context"
	"database/sql"
	"log"
)

// statements creates the five leaderboard tables. Each statement is
// idempotent so the service can run them on every startup.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS admin_users (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		username VARCHAR(64) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'admin',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS members (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		name VARCHAR(128) NOT NULL UNIQUE,
		avatar VARCHAR(512) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS weekly_leaderboard (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		member_id BIGINT UNSIGNED NOT NULL,
		sessions_attended INT NOT NULL DEFAULT 0,
		assessments_submitted INT NOT NULL DEFAULT 0,
		bonus_points INT NOT NULL DEFAULT 0,
		week_start DATE NOT NULL,
		UNIQUE KEY uniq_member_week (member_id, week_start),
		CONSTRAINT fk_weekly_member FOREIGN KEY (member_id) REFERENCES members(id)
	)`,
	`CREATE TABLE IF NOT EXISTS monthly_leaderboard (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		member_id BIGINT UNSIGNED NOT NULL,
		sessions_attended INT NOT NULL DEFAULT 0,
		assessments_submitted INT NOT NULL DEFAULT 0,
		bonus_points INT NOT NULL DEFAULT 0,
		month_year VARCHAR(7) NOT NULL,
		UNIQUE KEY uniq_member_month (member_id, month_year),
		CONSTRAINT fk_monthly_member FOREIGN KEY (member_id) REFERENCES members(id)
	)`,
	`CREATE TABLE IF NOT EXISTS audit_log (
		id BIGINT UNSIGNED PRIMARY KEY AUTO_INCREMENT,
		admin_username VARCHAR(64) NOT NULL,
		action VARCHAR(32) NOT NULL,
		details TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// InitSchema creates all tables when they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// EnsureDefaultAdmin inserts the bootstrap admin account if no account with
// that username exists. The password hash is computed by the caller so that
// bootstrap and login share the same hashing path. Returns true when the
// account was created.
func EnsureDefaultAdmin(ctx context.Context, db *sql.DB, username, passwordHash string) (bool, error) {
	var id uint64
	err := db.QueryRowContext(ctx,
		"SELECT id FROM admin_users WHERE username=? LIMIT 1", username).Scan(&id)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, err
	}
	_, err = db.ExecContext(ctx,
		"INSERT INTO admin_users (username, password_hash) VALUES (?,?)",
		username, passwordHash)
	if err != nil {
		return false, err
	}
	log.Printf("bootstrap admin %q created; change its password after first login", username)
	return true, nil
}
