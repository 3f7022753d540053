package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a presented token fails signature or
// claim validation before the store is ever consulted.
var ErrInvalidToken = errors.New("invalid session token")

// Manager issues and resolves session tokens. A token is an HS256 JWT
// whose "sid" claim references the server-side session record; the token
// by itself grants nothing once the record is deleted.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttlMin int) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: time.Duration(ttlMin) * time.Minute}
}

// TTL reports the configured session lifetime, used for the cookie Max-Age.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Create stores a new session record and returns the signed token to hand
// to the client.
func (m *Manager) Create(ctx context.Context, sess Session) (string, error) {
	id, err := randomHex(32)
	if err != nil {
		return "", err
	}
	sess.ID = id
	if err := m.store.Save(ctx, id, sess, m.ttl); err != nil {
		return "", err
	}
	exp := time.Now().UTC().Add(m.ttl)
	claims := jwt.MapClaims{
		"sid": id,
		"exp": exp.Unix(),
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Resolve validates the token signature, extracts the session id and loads
// the session from the store. It returns ErrInvalidToken for malformed or
// forged tokens and ErrNotFound for expired or revoked sessions.
func (m *Manager) Resolve(ctx context.Context, token string) (Session, error) {
	id, err := m.sessionID(token)
	if err != nil {
		return Session{}, err
	}
	return m.store.Get(ctx, id)
}

// Destroy revokes the session referenced by the token. Destroying an
// already-revoked session is not an error.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, err := m.sessionID(token)
	if err != nil {
		return err
	}
	return m.store.Delete(ctx, id)
}

func (m *Manager) sessionID(token string) (string, error) {
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	id, ok := claims["sid"].(string)
	if !ok || id == "" {
		return "", ErrInvalidToken
	}
	return id, nil
}

// randomHex returns a hex-encoded string generated from n bytes of
// cryptographically secure random data.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
