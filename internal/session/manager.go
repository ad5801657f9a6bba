package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Manager issues and revokes sessions and owns the cookie contract: an
// HTTP-only cookie carrying an opaque token, with a sliding expiry.
type Manager struct {
	Store      Store
	CookieName string
	TTL        time.Duration
}

func NewManager(store Store, cookieName string, ttl time.Duration) *Manager {
	return &Manager{Store: store, CookieName: cookieName, TTL: ttl}
}

// Issue creates a fresh session for user and sets the session cookie.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, user *User) error {
	token := uuid.NewString()
	if err := m.Store.Set(ctx, token, user, m.TTL); err != nil {
		return err
	}
	m.setCookie(w, token, m.TTL)
	return nil
}

// Resolve looks up the session referenced by the request cookie. Requests
// without a cookie, or with a token that no longer resolves, yield an
// anonymous session. A successful resolve slides the expiry forward and
// re-sets the cookie.
func (m *Manager) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.CookieName)
	if err != nil || cookie.Value == "" {
		return &Session{}, nil
	}

	sess, err := m.Store.Get(ctx, cookie.Value)
	if err == ErrNotFound {
		return &Session{}, nil
	}
	if err != nil {
		return &Session{}, err
	}

	if err := m.Store.Refresh(ctx, sess.Token, m.TTL); err != nil {
		return &Session{}, err
	}
	m.setCookie(w, sess.Token, m.TTL)
	return sess, nil
}

// Clear destroys the session referenced by the request cookie, if any, and
// expires the cookie. Clearing an absent session succeeds.
func (m *Manager) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(m.CookieName)
	if err == nil && cookie.Value != "" {
		if err := m.Store.Destroy(ctx, cookie.Value); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (m *Manager) setCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
