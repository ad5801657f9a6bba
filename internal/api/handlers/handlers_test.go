package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gkevents/server/internal/api/middleware"
	"github.com/gkevents/server/internal/domain/events"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/gkevents/server/internal/session"
	"github.com/stretchr/testify/require"
)

const testCookieName = "gkevents_session"

// stub repositories delegate to func fields; a call on an unset field
// panics, which is how tests assert that storage was never reached.

type stubUserRepo struct {
	create            func(ctx context.Context, name *string, email, passwordHash, role string) (int64, error)
	findByCredentials func(ctx context.Context, email, passwordHash string) (*users.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, name *string, email, passwordHash, role string) (int64, error) {
	return s.create(ctx, name, email, passwordHash, role)
}

func (s *stubUserRepo) FindByCredentials(ctx context.Context, email, passwordHash string) (*users.User, error) {
	return s.findByCredentials(ctx, email, passwordHash)
}

type stubEventRepo struct {
	list      func(ctx context.Context, query events.ListQuery) ([]events.Event, error)
	get       func(ctx context.Context, id int64) (*events.Event, error)
	attendees func(ctx context.Context, eventID int64) ([]events.Attendee, error)
	create    func(ctx context.Context, name string, date time.Time, location string) (int64, error)
	update    func(ctx context.Context, id int64, name string, date time.Time, location string) error
	delete    func(ctx context.Context, id int64) error
}

func (s *stubEventRepo) List(ctx context.Context, query events.ListQuery) ([]events.Event, error) {
	return s.list(ctx, query)
}

func (s *stubEventRepo) Get(ctx context.Context, id int64) (*events.Event, error) {
	return s.get(ctx, id)
}

func (s *stubEventRepo) Attendees(ctx context.Context, eventID int64) ([]events.Attendee, error) {
	return s.attendees(ctx, eventID)
}

func (s *stubEventRepo) Create(ctx context.Context, name string, date time.Time, location string) (int64, error) {
	return s.create(ctx, name, date, location)
}

func (s *stubEventRepo) Update(ctx context.Context, id int64, name string, date time.Time, location string) error {
	return s.update(ctx, id, name, date, location)
}

func (s *stubEventRepo) Delete(ctx context.Context, id int64) error {
	return s.delete(ctx, id)
}

type stubRSVPRepo struct {
	confirm   func(ctx context.Context, eventID, userID int64) error
	unconfirm func(ctx context.Context, eventID, userID int64) error
}

func (s *stubRSVPRepo) Confirm(ctx context.Context, eventID, userID int64) error {
	return s.confirm(ctx, eventID, userID)
}

func (s *stubRSVPRepo) Unconfirm(ctx context.Context, eventID, userID int64) error {
	return s.unconfirm(ctx, eventID, userID)
}

// serveAs runs the handler as the given user by seeding a memory session
// store and routing the request through the session middleware. A nil user
// serves the request anonymously, without the middleware at all.
func serveAs(t *testing.T, handler http.HandlerFunc, r *http.Request, user *session.User) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	if user == nil {
		handler.ServeHTTP(w, r)
		return w
	}

	store := session.NewMemoryStore()
	manager := session.NewManager(store, testCookieName, time.Hour)
	require.NoError(t, store.Set(context.Background(), "test-token", user, time.Hour))
	r.AddCookie(&http.Cookie{Name: testCookieName, Value: "test-token"})

	middleware.Session(manager)(handler).ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func adminUser() *session.User {
	name := "Admin"
	return &session.User{ID: 1, Name: &name, Email: "admin@example.com", Role: "admin"}
}

func regularUser() *session.User {
	name := "Jo"
	return &session.User{ID: 9, Name: &name, Email: "jo@example.com", Role: "user"}
}
