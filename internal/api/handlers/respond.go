package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// All responses share the {ok: ...} envelope. Failures carry a short
// machine-readable code; internal error detail is logged, never serialized.

type errorBody struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	if err != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("code", code).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("request failed")
	}

	writeJSON(w, status, errorBody{OK: false, Error: code})
}

func logRequestError(r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("method", r.Method).
		Msg("request error")
}
