package mwrole

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/policy"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		role           string
		allowed        []string
		expectedStatus int
	}{
		{
			name:           "Manager allowed",
			role:           policy.RoleManager,
			allowed:        []string{policy.RoleManager, policy.RoleSuperAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Super admin allowed",
			role:           policy.RoleSuperAdmin,
			allowed:        []string{policy.RoleManager, policy.RoleSuperAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Attendee forbidden",
			role:           policy.RoleAttendee,
			allowed:        []string{policy.RoleManager, policy.RoleSuperAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Manager cannot review",
			role:           policy.RoleManager,
			allowed:        []string{policy.RoleSuperAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "No role forbidden",
			role:           "",
			allowed:        []string{policy.RoleManager},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

			req := httptest.NewRequest("POST", "/events", nil)
			if tc.role != "" {
				req = req.WithContext(mwidentity.WithIdentity(req.Context(), "user-1", tc.role))
			}

			rr := httptest.NewRecorder()
			Require(tc.allowed...)(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedStatus == http.StatusForbidden {
				assert.JSONEq(t, `{"status":"Error","error":"forbidden"}`, rr.Body.String())
			}
		})
	}
}
