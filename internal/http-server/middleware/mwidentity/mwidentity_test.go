package mwidentity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFromHeaders(t *testing.T) {
	t.Parallel()

	var gotUserID, gotRole string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		gotRole = Role(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(HeaderUserID, "user-1")
	req.Header.Set(HeaderRole, "manager")

	rr := httptest.NewRecorder()
	New()(handler).ServeHTTP(rr, req)

	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "manager", gotRole)
}

func TestAnonymousRequest(t *testing.T) {
	t.Parallel()

	var gotUserID, gotRole string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		gotRole = Role(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)

	rr := httptest.NewRecorder()
	New()(handler).ServeHTTP(rr, req)

	assert.Equal(t, "", gotUserID)
	assert.Equal(t, "", gotRole)
}

func TestRequireUser(t *testing.T) {
	t.Parallel()

	handlerCalls := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalls++
	})

	t.Run("authenticated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)
		req = req.WithContext(WithIdentity(req.Context(), "user-1", "attendee"))

		rr := httptest.NewRecorder()
		RequireUser()(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, handlerCalls)
	})

	t.Run("anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/bookings", nil)

		rr := httptest.NewRecorder()
		RequireUser()(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rr.Body.String())
		assert.Equal(t, 1, handlerCalls)
	})
}
