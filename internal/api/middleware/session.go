package middleware

import (
	"context"
	"net/http"

	"github.com/gkevents/server/internal/session"
	"github.com/rs/zerolog"
)

type contextKeySession struct{}

// Session resolves the request's session cookie and attaches the resulting
// session to the context. A request without a valid cookie, or one whose
// lookup fails, proceeds anonymously; handlers decide what anonymity means
// for them.
func Session(manager *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := manager.Resolve(ctx, w, r)
			if err != nil {
				zerolog.Ctx(ctx).Error().Err(err).Msg("session resolve failed")
				sess = &session.Session{}
			}

			ctx = context.WithValue(ctx, contextKeySession{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom returns the session attached by the Session middleware. It
// returns an anonymous session when the middleware did not run.
func SessionFrom(r *http.Request) *session.Session {
	if sess, ok := r.Context().Value(contextKeySession{}).(*session.Session); ok {
		return sess
	}
	return &session.Session{}
}
