package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gkevents/server/internal/session"
	"github.com/jackc/pgx/v5"
)

func (s *SessionStore) Get(ctx context.Context, token string) (*session.Session, error) {
	row := s.queryer().QueryRow(ctx, `
SELECT user_data
  FROM sessions
 WHERE token = $1 AND expires_at > now()
`, token)

	var payload []byte
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var user *session.User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, fmt.Errorf("decode session user: %w", err)
	}
	return &session.Session{Token: token, User: user}, nil
}

func (s *SessionStore) Set(ctx context.Context, token string, user *session.User, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	_, err = s.queryer().Exec(ctx, `
INSERT INTO sessions (token, user_data, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (token) DO UPDATE
   SET user_data = EXCLUDED.user_data, expires_at = EXCLUDED.expires_at
`, token, payload, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *SessionStore) Refresh(ctx context.Context, token string, ttl time.Duration) error {
	_, err := s.queryer().Exec(ctx, `
UPDATE sessions SET expires_at = $2 WHERE token = $1
`, token, time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}
	return nil
}

func (s *SessionStore) Destroy(ctx context.Context, token string) error {
	_, err := s.queryer().Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("destroy session: %w", err)
	}
	return nil
}

// PurgeExpired removes expired session rows. The serve loop calls it
// periodically; expired rows are already invisible to Get.
func (s *SessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.queryer().Exec(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *SessionStore) queryer() queryer {
	if s.tx != nil {
		return s.tx
	}
	return s.pool
}
