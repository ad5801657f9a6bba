// Package auth decides what a request's session is allowed to do. The checks
// are pure functions of the session state resolved by the middleware; they
// never touch storage.
package auth

import (
	"errors"

	"github.com/gkevents/server/internal/session"
)

var (
	// ErrNotAuthenticated means no user is attached to the session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden means the session user lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

const RoleAdmin = "admin"

// RequireUser returns the session's user snapshot, or ErrNotAuthenticated
// for anonymous sessions.
func RequireUser(sess *session.Session) (*session.User, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return sess.User, nil
}

// RequireAdmin is RequireUser plus a role check. The role is the one cached
// in the session at login; a role change out of band takes effect on the
// next login.
func RequireAdmin(sess *session.Session) (*session.User, error) {
	user, err := RequireUser(sess)
	if err != nil {
		return nil, err
	}
	if user.Role != RoleAdmin {
		return nil, ErrForbidden
	}
	return user, nil
}
