package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gkevents/server/internal/domain/events"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ events.Repository = (*EventRepository)(nil)

func (r *EventRepository) List(ctx context.Context, query events.ListQuery) ([]events.Event, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT id, name, date, location, created_at
  FROM events
 WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR location ILIKE '%' || $1 || '%')
 ORDER BY date ASC, id ASC
 LIMIT $2 OFFSET $3
`, query.Q, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	items := make([]events.Event, 0, query.Limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		items = append(items, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return items, nil
}

func (r *EventRepository) Get(ctx context.Context, id int64) (*events.Event, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT id, name, date, location, created_at
  FROM events
 WHERE id = $1
`, id)

	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, events.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &event, nil
}

func (r *EventRepository) Attendees(ctx context.Context, eventID int64) ([]events.Attendee, error) {
	rows, err := r.queryer().Query(ctx, `
SELECT ea.user_id, u.name, u.email
  FROM event_attendees ea
  JOIN users u ON u.id = ea.user_id
 WHERE ea.event_id = $1
 ORDER BY u.name ASC
`, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	attendees := make([]events.Attendee, 0)
	for rows.Next() {
		var attendee events.Attendee
		if err := rows.Scan(&attendee.UserID, &attendee.Name, &attendee.Email); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, attendee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendees: %w", err)
	}
	return attendees, nil
}

func (r *EventRepository) Create(ctx context.Context, name string, date time.Time, location string) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO events (name, date, location)
VALUES ($1, $2, $3)
RETURNING id
`, name, date, location)

	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return id, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, name string, date time.Time, location string) error {
	// No existence check: updating an unknown id touches zero rows and
	// succeeds.
	_, err := r.queryer().Exec(ctx, `
UPDATE events SET name = $1, date = $2, location = $3 WHERE id = $4
`, name, date, location, id)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	// Attendance rows go first so the event row never outlives them.
	repo := &Repository{pool: r.pool, tx: r.tx}
	return repo.WithTx(ctx, func(ctx context.Context, repo *Repository) error {
		if _, err := repo.tx.Exec(ctx, `DELETE FROM event_attendees WHERE event_id = $1`, id); err != nil {
			return fmt.Errorf("delete attendees: %w", err)
		}
		if _, err := repo.tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}

func scanEvent(row pgx.Row) (events.Event, error) {
	var (
		event     events.Event
		date      pgtype.Date
		createdAt pgtype.Timestamptz
	)
	if err := row.Scan(&event.ID, &event.Name, &date, &event.Location, &createdAt); err != nil {
		return events.Event{}, err
	}
	if date.Valid {
		event.Date = date.Time.Format(events.DateFormat)
	}
	if createdAt.Valid {
		event.CreatedAt = createdAt.Time
	}
	return event, nil
}

func (r *EventRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}
