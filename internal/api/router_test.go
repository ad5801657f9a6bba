package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gkevents/server/internal/api/handlers"
	"github.com/gkevents/server/internal/domain/events"
	"github.com/gkevents/server/internal/domain/rsvp"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/gkevents/server/internal/session"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedUserRepo struct{}

func (fixedUserRepo) Create(context.Context, *string, string, string, string) (int64, error) {
	return 1, nil
}

func (fixedUserRepo) FindByCredentials(context.Context, string, string) (*users.User, error) {
	return nil, users.ErrInvalidCredentials
}

type fixedEventRepo struct{}

func (fixedEventRepo) List(context.Context, events.ListQuery) ([]events.Event, error) {
	return []events.Event{}, nil
}

func (fixedEventRepo) Get(context.Context, int64) (*events.Event, error) {
	return nil, events.ErrNotFound
}

func (fixedEventRepo) Attendees(context.Context, int64) ([]events.Attendee, error) {
	return []events.Attendee{}, nil
}

func (fixedEventRepo) Create(context.Context, string, time.Time, string) (int64, error) {
	return 1, nil
}

func (fixedEventRepo) Update(context.Context, int64, string, time.Time, string) error { return nil }
func (fixedEventRepo) Delete(context.Context, int64) error                            { return nil }

type fixedRSVPRepo struct{}

func (fixedRSVPRepo) Confirm(context.Context, int64, int64) error   { return nil }
func (fixedRSVPRepo) Unconfirm(context.Context, int64, int64) error { return nil }

type fixedPinger struct{}

func (fixedPinger) Ping(context.Context) error { return nil }

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	sessions := session.NewManager(session.NewMemoryStore(), "sid", time.Hour)
	return newHandler(routerDeps{
		auth:     handlers.NewAuthHandler(users.NewService(fixedUserRepo{}), sessions),
		events:   handlers.NewEventsHandler(events.NewService(fixedEventRepo{})),
		rsvp:     handlers.NewRSVPHandler(rsvp.NewService(fixedRSVPRepo{})),
		health:   handlers.Health(fixedPinger{}),
		sessions: sessions,
		logger:   zerolog.Nop(),
	})
}

func TestRoutes(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		method     string
		target     string
		wantStatus int
	}{
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/events", http.StatusOK},
		{http.MethodGet, "/api/events/42", http.StatusNotFound},
		{http.MethodGet, "/api/me", http.StatusOK},
		{http.MethodPost, "/api/logout", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		// Admin mutations reject anonymous callers before touching storage.
		{http.MethodPost, "/api/events", http.StatusUnauthorized},
		{http.MethodPut, "/api/events/42", http.StatusUnauthorized},
		{http.MethodDelete, "/api/events/42", http.StatusUnauthorized},
		{http.MethodPost, "/api/events/42/confirm", http.StatusUnauthorized},
		{http.MethodDelete, "/api/events/42/confirm", http.StatusUnauthorized},
		// Wrong method on a registered path.
		{http.MethodDelete, "/api/register", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestListRouteReturnsBareArray(t *testing.T) {
	router := testRouter(t)

	r := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
