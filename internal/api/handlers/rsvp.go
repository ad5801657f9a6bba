package handlers

import (
	"net/http"

	"github.com/gkevents/server/internal/domain/rsvp"
)

type RSVPHandler struct {
	RSVP *rsvp.Service
}

func NewRSVPHandler(service *rsvp.Service) *RSVPHandler {
	return &RSVPHandler{RSVP: service}
}

// Confirm upserts the attendance pair for the session user. Confirming
// twice, or confirming an event that does not exist, still succeeds.
func (h *RSVPHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.RSVP.Confirm(r.Context(), pathID(r), user.ID); err != nil {
		writeError(w, r, http.StatusInternalServerError, "confirm_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, rsvpConfirmResponse{OK: true, Joined: true})
}

// Unconfirm deletes the attendance pair; deleting nothing is still success.
func (h *RSVPHandler) Unconfirm(w http.ResponseWriter, r *http.Request) {
	user, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.RSVP.Unconfirm(r.Context(), pathID(r), user.ID); err != nil {
		writeError(w, r, http.StatusInternalServerError, "unconfirm_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, rsvpUnconfirmResponse{OK: true, Left: true})
}
