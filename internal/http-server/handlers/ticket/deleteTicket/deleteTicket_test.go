package deleteTicket

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketBooker/internal/http-server/handlers/ticket/deleteTicket/mocks"
	"ticketBooker/internal/lib/logger/handlers/slogdiscard"
	"ticketBooker/internal/storage"
)

func TestDeleteTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		ticketID       string
		mockSetup      func(m *mocks.TicketDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "Success",
			ticketID: "ticket-1",
			mockSetup: func(m *mocks.TicketDeleter) {
				m.On("DeleteTicket", mock.Anything, "ticket-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:     "Ticket not found",
			ticketID: "missing",
			mockSetup: func(m *mocks.TicketDeleter) {
				m.On("DeleteTicket", mock.Anything, "missing").Return(storage.ErrTicketNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"ticket not found"}`,
		},
		{
			name:     "Internal server error",
			ticketID: "ticket-1",
			mockSetup: func(m *mocks.TicketDeleter) {
				m.On("DeleteTicket", mock.Anything, "ticket-1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete ticket"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewTicketDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/tickets/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", "/tickets/"+tc.ticketID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")

			mockDeleter.AssertExpectations(t)
		})
	}
}
