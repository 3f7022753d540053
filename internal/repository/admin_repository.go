package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/synapsehq/leaderboard-api/internal/model"
)

// AdminRepo provides read access to the admin_users table. Accounts are
// created only by the bootstrap path in the database package.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

// GetByUsername fetches an admin account by its normalized username.
// Returns sql.ErrNoRows when no such account exists.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (model.AdminUser, error) {
	username = strings.TrimSpace(username)
	var u model.AdminUser
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,password_hash,role,created_at FROM admin_users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}
