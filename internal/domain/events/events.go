package events

import (
	"context"
	"errors"
	"time"
)

// DateFormat is the wire format for event dates. Events carry a calendar
// date with no time component.
const DateFormat = "2006-01-02"

type Event struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// Attendee is a user joined through the attendance table for an event's
// detail view.
type Attendee struct {
	UserID int64   `json:"user_id"`
	Name   *string `json:"name"`
	Email  string  `json:"email"`
}

// Detail is an event plus its attendee roster, ordered by attendee name.
type Detail struct {
	Event     Event      `json:"event"`
	Attendees []Attendee `json:"attendees"`
}

var (
	ErrNotFound = errors.New("event not found")
	// ErrInvalidDate flags a date that does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid event date")
)

type Repository interface {
	List(ctx context.Context, query ListQuery) ([]Event, error)
	Get(ctx context.Context, id int64) (*Event, error)
	Attendees(ctx context.Context, eventID int64) ([]Attendee, error)
	Create(ctx context.Context, name string, date time.Time, location string) (int64, error)
	Update(ctx context.Context, id int64, name string, date time.Time, location string) error
	// Delete removes the attendance rows first, then the event row.
	Delete(ctx context.Context, id int64) error
}
