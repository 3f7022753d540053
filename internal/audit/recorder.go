package audit

import (
	"context"
	"log"
	"time"

	"github.com/synapsehq/leaderboard-api/internal/queue"
	"github.com/synapsehq/leaderboard-api/internal/repository"
)

// Recorder is the production audit sink. Record appends the entry to the
// audit_log table, then mirrors it to the broker. Failures on either path
// are logged and swallowed: auditing must not block the action it records.
type Recorder struct {
	Repo     *repository.AuditRepo
	Publish  bool // broker mirroring can be switched off for local runs
	QueueTTL time.Duration
}

func NewRecorder(repo *repository.AuditRepo, publish bool) *Recorder {
	return &Recorder{Repo: repo, Publish: publish, QueueTTL: 3 * time.Second}
}

// Record writes one audit entry for actor. It always returns nil; the
// audit trail is best-effort by design.
func (r *Recorder) Record(ctx context.Context, actor, action, details string) error {
	if err := r.Repo.Insert(ctx, actor, action, details); err != nil {
		log.Printf("audit: insert failed (action=%s actor=%s): %v", action, actor, err)
		return nil
	}
	if !r.Publish {
		return nil
	}
	pctx, cancel := context.WithTimeout(context.Background(), r.QueueTTL)
	defer cancel()
	_ = PublishAuditRecorded(pctx, queue.AuditRecordedEvent{
		AdminUsername: actor,
		Action:        action,
		Details:       details,
		RecordedAt:    time.Now().UTC().Format(time.RFC3339),
	})
	return nil
}
