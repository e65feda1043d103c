// Package mwidentity extracts the authenticated identity that the
// upstream auth layer attaches to each request. Token verification
// happens before traffic reaches this service; the headers are trusted
// as-is.
package mwidentity

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"ticketBooker/internal/lib/api/response"
)

type ctxKey string

const (
	userIDKey ctxKey = "user_id"
	roleKey   ctxKey = "role"

	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"
)

// New copies the identity headers into the request context so handlers
// and role middleware can read them without touching the transport.
func New() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if id := r.Header.Get(HeaderUserID); id != "" {
				ctx = context.WithValue(ctx, userIDKey, id)
			}
			if role := r.Header.Get(HeaderRole); role != "" {
				ctx = context.WithValue(ctx, roleKey, role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireUser rejects requests that carry no user identity.
func RequireUser() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if UserID(r.Context()) == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}
			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

// UserID returns the authenticated user id, or "" for anonymous calls.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// Role returns the caller's role, or "" when none was supplied.
func Role(ctx context.Context) string {
	if v, ok := ctx.Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// WithIdentity returns a context carrying the given identity. Intended
// for tests.
func WithIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}
