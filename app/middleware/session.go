package appMiddleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/explorai/explorai-api/internal/api/preferences"
	"github.com/explorai/explorai-api/internal/types"
)

type contextKey string

// SessionKey is the context key under which the resolved session is stored.
const SessionKey contextKey = "session"

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "explorai_session"

// Session resolves the caller's session from the cookie, creating a fresh one
// (and setting the cookie) when none exists or the old one expired. Every
// request downstream can rely on a session being present in the context.
func Session(store preferences.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *preferences.Session

			if cookie, err := r.Cookie(SessionCookieName); err == nil {
				sess, err = store.Get(r.Context(), cookie.Value)
				if err != nil && !errors.Is(err, types.ErrNotFound) {
					logger.ErrorContext(r.Context(), "Failed to resolve session", slog.Any("error", err))
				}
			}

			if sess == nil {
				sess = store.Create(r.Context())
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sess.ID.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				logger.DebugContext(r.Context(), "New session issued", slog.String("sessionID", sess.ID.String()))
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session placed in the context by Session.
func SessionFromContext(ctx context.Context) (*preferences.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*preferences.Session)
	return sess, ok
}
