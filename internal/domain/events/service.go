package events

import (
	"context"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, query ListQuery) ([]Event, error) {
	return s.repo.List(ctx, query)
}

// Get returns the event with its attendee roster. The roster may be empty;
// that is not an error.
func (s *Service) Get(ctx context.Context, id int64) (*Detail, error) {
	event, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.repo.Attendees(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Event: *event, Attendees: attendees}, nil
}

func (s *Service) Create(ctx context.Context, name, date, location string) (int64, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, name, parsed, location)
}

// Update overwrites the event unconditionally. Updating an id that does not
// exist touches zero rows and still succeeds; callers rely on that.
func (s *Service) Update(ctx context.Context, id int64, name, date, location string) error {
	parsed, err := parseDate(date)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, name, parsed, location)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return parsed, nil
}
