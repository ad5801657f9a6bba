package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceConfirmIsIdempotent(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	eventID := insertEvent(t, ctx, pool, "Gala", "2026-09-01", "Hall")
	userID := insertUser(t, ctx, pool, strPtr("Ana"), "ana@example.com")

	require.NoError(t, repo.RSVP().Confirm(ctx, eventID, userID))
	require.NoError(t, repo.RSVP().Confirm(ctx, eventID, userID))

	assert.Equal(t, 1, countRows(t, ctx, pool,
		`SELECT count(*) FROM event_attendees WHERE event_id = $1 AND user_id = $2`, eventID, userID))
}

func TestAttendanceConfirmUnknownEvent(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	userID := insertUser(t, ctx, pool, strPtr("Ana"), "ana@example.com")

	// No foreign key on event_id: confirming an event that does not exist
	// succeeds and leaves a dangling row.
	require.NoError(t, repo.RSVP().Confirm(ctx, 999, userID))
	assert.Equal(t, 1, countRows(t, ctx, pool,
		`SELECT count(*) FROM event_attendees WHERE event_id = 999`))
}

func TestAttendanceUnconfirm(t *testing.T) {
	pool := setupPostgres(t)
	ctx := context.Background()

	repo, err := NewRepository(pool)
	require.NoError(t, err)

	eventID := insertEvent(t, ctx, pool, "Gala", "2026-09-01", "Hall")
	userID := insertUser(t, ctx, pool, strPtr("Ana"), "ana@example.com")
	require.NoError(t, repo.RSVP().Confirm(ctx, eventID, userID))

	require.NoError(t, repo.RSVP().Unconfirm(ctx, eventID, userID))
	assert.Zero(t, countRows(t, ctx, pool,
		`SELECT count(*) FROM event_attendees WHERE event_id = $1`, eventID))

	// Removing an absent pair is still success.
	require.NoError(t, repo.RSVP().Unconfirm(ctx, eventID, userID))
}
