// Package session implements server-side admin sessions. The session
// payload lives in a Store keyed by a random id; the client only ever
// holds a signed token referencing that id, so revocation is immediate
// and nothing secret leaves the server.
package session

import (
	"context"
	"errors"
	"time"
)

// Session is the server-held authentication state for one logged-in admin.
type Session struct {
	ID       string `json:"-"`
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ErrNotFound is returned by Store.Get when no session exists under the
// given id, either because it was never created, expired, or was revoked
// by logout.
var ErrNotFound = errors.New("session not found")

// Store persists session payloads keyed by session id. Implementations
// must expire entries after ttl.
type Store interface {
	Save(ctx context.Context, id string, s Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
