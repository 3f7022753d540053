package model

import "time"

// AuditEntry represents a row in the append-only `audit_log` table. One
// entry is written for every authenticated mutating action, including
// login and logout. AdminUsername falls back to "system" when no session
// is present.
type AuditEntry struct {
	ID            uint64    `json:"id"`
	AdminUsername string    `json:"admin_username"`
	Action        string    `json:"action"`
	Details       string    `json:"details"`
	Timestamp     time.Time `json:"timestamp"`
}

// Audit action tags. The set is closed; new mutating endpoints must add
// their own tag here.
const (
	ActionLogin         = "LOGIN"
	ActionLogout        = "LOGOUT"
	ActionAddMember     = "ADD_MEMBER"
	ActionDeleteMember  = "DELETE_MEMBER"
	ActionUpdateWeekly  = "UPDATE_WEEKLY"
	ActionUpdateMonthly = "UPDATE_MONTHLY"
	ActionDeleteWeekly  = "DELETE_WEEKLY"
	ActionDeleteMonthly = "DELETE_MONTHLY"
)
