package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gkevents/server/internal/api/middleware"
	"github.com/gkevents/server/internal/auth"
	"github.com/gkevents/server/internal/domain/events"
	"github.com/gkevents/server/internal/session"
)

type EventsHandler struct {
	Events *events.Service
}

func NewEventsHandler(service *events.Service) *EventsHandler {
	return &EventsHandler{Events: service}
}

type eventRequest struct {
	Name     string `json:"name" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Location string `json:"location" validate:"required"`
}

type eventMutationResponse struct {
	OK       bool   `json:"ok"`
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type rsvpConfirmResponse struct {
	OK     bool `json:"ok"`
	Joined bool `json:"joined"`
}

type rsvpUnconfirmResponse struct {
	OK   bool `json:"ok"`
	Left bool `json:"left"`
}

// List is public. Zero matches yield an empty array, never an error.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	query := events.ParseListQuery(r.URL.Query())

	items, err := h.Events.List(r.Context(), query)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "list_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Get is public and returns the event plus its attendee roster.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	detail, err := h.Events.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "not_found", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "detail_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	var input eventRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}

	id, err := h.Events.Create(r.Context(), input.Name, input.Date, input.Location)
	if err != nil {
		if errors.Is(err, events.ErrInvalidDate) {
			writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "create_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, eventMutationResponse{
		OK: true, ID: id, Name: input.Name, Date: input.Date, Location: input.Location,
	})
}

// Update overwrites unconditionally; an unknown id succeeds touching zero
// rows.
func (h *EventsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	id := pathID(r)
	if id == 0 {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}

	var input eventRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}

	if err := h.Events.Update(r.Context(), id, input.Name, input.Date, input.Location); err != nil {
		if errors.Is(err, events.ErrInvalidDate) {
			writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "update_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, eventMutationResponse{
		OK: true, ID: id, Name: input.Name, Date: input.Date, Location: input.Location,
	})
}

// Delete reports success whether or not the event existed.
func (h *EventsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	if err := h.Events.Delete(r.Context(), pathID(r)); err != nil {
		writeError(w, r, http.StatusInternalServerError, "delete_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// pathID parses the {id} path segment. Unparseable values become 0, which
// no row ever matches.
func pathID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func requireUser(w http.ResponseWriter, r *http.Request) (*session.User, bool) {
	user, err := auth.RequireUser(middleware.SessionFrom(r))
	if err != nil {
		writeGuardError(w, r, err)
		return nil, false
	}
	return user, true
}

func requireAdmin(w http.ResponseWriter, r *http.Request) (*session.User, bool) {
	user, err := auth.RequireAdmin(middleware.SessionFrom(r))
	if err != nil {
		writeGuardError(w, r, err)
		return nil, false
	}
	return user, true
}

func writeGuardError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, auth.ErrForbidden) {
		writeError(w, r, http.StatusForbidden, "forbidden", nil)
		return
	}
	writeError(w, r, http.StatusUnauthorized, "not_authenticated", nil)
}
