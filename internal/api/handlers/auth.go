package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gkevents/server/internal/api/middleware"
	"github.com/gkevents/server/internal/domain/users"
	"github.com/gkevents/server/internal/session"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type AuthHandler struct {
	Users    *users.Service
	Sessions *session.Manager
}

func NewAuthHandler(usersService *users.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Users: usersService, Sessions: sessions}
}

type registerRequest struct {
	Name     *string `json:"name"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	OK   bool        `json:"ok"`
	User *users.User `json:"user"`
}

type sessionUserResponse struct {
	OK   bool          `json:"ok"`
	User *session.User `json:"user"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// Register creates an account. It deliberately does not log the new user
// in; the client follows up with a login call.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input registerRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}

	user, err := h.Users.Register(r.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailInUse) {
			writeError(w, r, http.StatusConflict, "email_in_use", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "register_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{OK: true, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}
	if err := validate.Struct(input); err != nil {
		writeError(w, r, http.StatusBadRequest, "missing_fields", nil)
		return
	}

	user, err := h.Users.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "invalid_credentials", nil)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "login_failed", err)
		return
	}

	snapshot := &session.User{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	if err := h.Sessions.Issue(r.Context(), w, snapshot); err != nil {
		writeError(w, r, http.StatusInternalServerError, "login_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{OK: true, User: user})
}

// Logout always reports success, even when no session existed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Clear(r.Context(), w, r); err != nil {
		// The cookie is gone either way; losing the stale record is
		// the store's problem.
		logRequestError(r, err)
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

// Me reports the session user, or null for anonymous requests. It never
// fails.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)
	var user *session.User
	if sess != nil {
		user = sess.User
	}
	writeJSON(w, http.StatusOK, sessionUserResponse{OK: true, User: user})
}
