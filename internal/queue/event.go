// Package queue defines message payloads exchanged over the message broker
// and the background consumer that mirrors the audit trail to disk.
package queue

// AuditRecordedEvent is published after an audit entry has been appended to
// the database. It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the primary database.
type AuditRecordedEvent struct {
	AdminUsername string `json:"admin_username"`
	Action        string `json:"action"`
	Details       string `json:"details"`
	RecordedAt    string `json:"recorded_at"`
}
