package handlers

import (
	"context"
	"net/http"
	"time"
)

// Pinger is the liveness probe against the storage backend. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			writeError(w, r, http.StatusInternalServerError, "db_unreachable", err)
			return
		}

		writeJSON(w, http.StatusOK, okResponse{OK: true})
	}
}
