package model

import "time"

// AdminUser represents a row in the `admin_users` table. Accounts are
// created once at bootstrap; there is no self-service registration path.
// The json tags are omitted because handlers expose their own response
// shapes and never serialize the stored hash.
//
// Fields:
//
//	ID           – primary key identifier of the account.
//	Username     – unique login name.
//	PasswordHash – bcrypt hash of the password.
//	Role         – role name, defaults to "admin".
//	CreatedAt    – timestamp of creation.
type AdminUser struct {
	ID           uint64    // admin_users.id
	Username     string    // admin_users.username
	PasswordHash string    // admin_users.password_hash
	Role         string    // admin_users.role
	CreatedAt    time.Time // admin_users.created_at
}
