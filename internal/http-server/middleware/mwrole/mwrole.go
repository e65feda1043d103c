package mwrole

import (
	"net/http"

	"github.com/go-chi/render"

	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/policy"
)

// Require returns a middleware that rejects callers whose role is not
// in the allowed set with 403. Identity must already be in the context
// (see mwidentity).
func Require(allowed ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			role := mwidentity.Role(r.Context())
			if !policy.Allow(role, allowed...) {
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
