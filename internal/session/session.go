// Package session holds the server-side session state keyed by the opaque
// token carried in the session cookie. A session stores at most one thing: a
// snapshot of the authenticated user taken at login time. The snapshot is
// deliberately not re-fetched per request, so a role change only takes effect
// on the next login.
package session

import (
	"context"
	"errors"
	"time"
)

// User is the snapshot stored in a session at login. Name mirrors the users
// table, where it is nullable.
type User struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

// Session is the state attached to each request by the session middleware.
// An anonymous request carries a Session with a nil User.
type Session struct {
	Token string
	User  *User
}

// Authenticated reports whether the session carries a user snapshot.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil
}

// ErrNotFound is returned by Store.Get when the token resolves to nothing,
// either because it was never issued or because it expired.
var ErrNotFound = errors.New("session not found")

// Store persists session records. Implementations must treat expired records
// as absent.
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Set(ctx context.Context, token string, user *User, ttl time.Duration) error
	// Refresh extends the expiry of an existing record. Refreshing an
	// unknown token is a no-op.
	Refresh(ctx context.Context, token string, ttl time.Duration) error
	Destroy(ctx context.Context, token string) error
}
