package postgres

import (
	"context"
	"fmt"

	"github.com/gkevents/server/internal/domain/rsvp"
)

var _ rsvp.Repository = (*AttendanceRepository)(nil)

// Confirm is an idempotent upsert on the (event_id, user_id) pair. The
// unique constraint makes it safe under concurrent callers; a conflicting
// insert is a no-op that still reports success.
func (r *AttendanceRepository) Confirm(ctx context.Context, eventID, userID int64) error {
	_, err := r.queryer().Exec(ctx, `
INSERT INTO event_attendees (event_id, user_id)
VALUES ($1, $2)
ON CONFLICT (event_id, user_id) DO NOTHING
`, eventID, userID)
	if err != nil {
		return fmt.Errorf("confirm attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) Unconfirm(ctx context.Context, eventID, userID int64) error {
	_, err := r.queryer().Exec(ctx, `
DELETE FROM event_attendees WHERE event_id = $1 AND user_id = $2
`, eventID, userID)
	if err != nil {
		return fmt.Errorf("unconfirm attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}
