package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gkevents/server/internal/domain/rsvp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRSVPHandler(repo rsvp.Repository) *RSVPHandler {
	return NewRSVPHandler(rsvp.NewService(repo))
}

func confirmRequest(method string) *http.Request {
	r := httptest.NewRequest(method, "/api/events/4/confirm", nil)
	r.SetPathValue("id", "4")
	return r
}

func TestConfirm(t *testing.T) {
	var gotEvent, gotUser int64
	repo := &stubRSVPRepo{
		confirm: func(_ context.Context, eventID, userID int64) error {
			gotEvent, gotUser = eventID, userID
			return nil
		},
	}
	h := newRSVPHandler(repo)

	w := serveAs(t, h.Confirm, confirmRequest(http.MethodPost), regularUser())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), gotEvent)
	assert.Equal(t, int64(9), gotUser)
	assert.JSONEq(t, `{"ok":true,"joined":true}`, w.Body.String())
}

func TestConfirmRequiresAuth(t *testing.T) {
	// Nil confirm: touching storage panics the test.
	h := newRSVPHandler(&stubRSVPRepo{})

	w := serveAs(t, h.Confirm, confirmRequest(http.MethodPost), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var body errorBody
	decodeBody(t, w, &body)
	assert.Equal(t, "not_authenticated", body.Error)
}

func TestConfirmFailure(t *testing.T) {
	repo := &stubRSVPRepo{
		confirm: func(context.Context, int64, int64) error {
			return errors.New("connection refused")
		},
	}
	h := newRSVPHandler(repo)

	w := serveAs(t, h.Confirm, confirmRequest(http.MethodPost), regularUser())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	decodeBody(t, w, &body)
	assert.Equal(t, "confirm_failed", body.Error)
}

func TestUnconfirm(t *testing.T) {
	var gotEvent, gotUser int64
	repo := &stubRSVPRepo{
		unconfirm: func(_ context.Context, eventID, userID int64) error {
			gotEvent, gotUser = eventID, userID
			return nil
		},
	}
	h := newRSVPHandler(repo)

	w := serveAs(t, h.Unconfirm, confirmRequest(http.MethodDelete), regularUser())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), gotEvent)
	assert.Equal(t, int64(9), gotUser)
	assert.JSONEq(t, `{"ok":true,"left":true}`, w.Body.String())
}

func TestUnconfirmRequiresAuth(t *testing.T) {
	h := newRSVPHandler(&stubRSVPRepo{})

	w := serveAs(t, h.Unconfirm, confirmRequest(http.MethodDelete), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUnconfirmFailure(t *testing.T) {
	repo := &stubRSVPRepo{
		unconfirm: func(context.Context, int64, int64) error {
			return errors.New("connection refused")
		},
	}
	h := newRSVPHandler(repo)

	w := serveAs(t, h.Unconfirm, confirmRequest(http.MethodDelete), regularUser())

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body errorBody
	decodeBody(t, w, &body)
	assert.Equal(t, "unconfirm_failed", body.Error)
}
