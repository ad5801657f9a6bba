package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/gkevents/server/internal/auth"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepositoryRequiresPool(t *testing.T) {
	_, err := NewRepository(nil)
	require.Error(t, err)
}

func TestWithTxCommits(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	err = repo.WithTx(ctx, func(ctx context.Context, txRepo *Repository) error {
		_, err := txRepo.Users().Create(ctx, nil, "tx@example.com", auth.HashPassword("pw"), users.RoleUser)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countRows(t, ctx, pool,
		`SELECT count(*) FROM users WHERE email = 'tx@example.com'`))
}

func TestWithTxRollsBackOnError(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.WithTx(ctx, func(ctx context.Context, txRepo *Repository) error {
		if _, err := txRepo.Users().Create(ctx, nil, "gone@example.com", auth.HashPassword("pw"), users.RoleUser); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Zero(t, countRows(t, ctx, pool,
		`SELECT count(*) FROM users WHERE email = 'gone@example.com'`))
}

func TestWithTxReusesEnclosingTransaction(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	eventID := insertEvent(t, ctx, pool, "Gala", "2026-09-01", "Hall")
	userID := insertUser(t, ctx, pool, strPtr("Ana"), "ana@example.com")
	require.NoError(t, repo.RSVP().Confirm(ctx, eventID, userID))

	// Delete runs its attendees-then-event ordering through WithTx; inside
	// an already-open transaction it must join it, not begin a second one.
	boom := errors.New("boom")
	err = repo.WithTx(ctx, func(ctx context.Context, txRepo *Repository) error {
		if err := txRepo.Events().Delete(ctx, eventID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// The enclosing rollback undid the delete.
	assert.Equal(t, 1, countRows(t, ctx, pool,
		`SELECT count(*) FROM events WHERE id = $1`, eventID))
	assert.Equal(t, 1, countRows(t, ctx, pool,
		`SELECT count(*) FROM event_attendees WHERE event_id = $1`, eventID))
}
