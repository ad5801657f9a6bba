// Package rsvp is a user's self-service declaration of attendance intent.
// Attendance is a bare (event_id, user_id) pair; both confirm and unconfirm
// are idempotent, and the pair's uniqueness is enforced by the storage
// layer, not by application-level locking.
package rsvp

import "context"

type Repository interface {
	// Confirm inserts the pair, ignoring a duplicate. It does not check
	// that the event exists; confirming an unknown event leaves a
	// dangling attendance row, matching historical behavior.
	Confirm(ctx context.Context, eventID, userID int64) error
	// Unconfirm deletes the pair. Deleting zero rows is not an error.
	Unconfirm(ctx context.Context, eventID, userID int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Confirm(ctx context.Context, eventID, userID int64) error {
	return s.repo.Confirm(ctx, eventID, userID)
}

func (s *Service) Unconfirm(ctx context.Context, eventID, userID int64) error {
	return s.repo.Unconfirm(ctx, eventID, userID)
}
