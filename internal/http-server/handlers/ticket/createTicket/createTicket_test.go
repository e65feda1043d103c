package createTicket

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketBooker/internal/http-server/handlers/ticket/createTicket/mocks"
	"ticketBooker/internal/lib/logger/handlers/slogdiscard"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

func TestCreateTicketHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TicketCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: `{"event_id": "event-1", "ticket_type": "single", "price": "25.50"}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk models.Ticket) bool {
					return tk.EventID == "event-1" &&
						tk.TicketType == models.TicketTypeSingle &&
						tk.Price.String() == "25.5"
				})).Return("ticket-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","ticket_id":"ticket-1"}`,
		},
		{
			name:        "Defaults applied",
			requestBody: `{"event_id": "event-1"}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, mock.MatchedBy(func(tk models.Ticket) bool {
					return tk.EventID == "event-1" && tk.TicketType == "" && tk.UserID == ""
				})).Return("ticket-2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","ticket_id":"ticket-2"}`,
		},
		{
			name:           "Missing event_id",
			requestBody:    `{"ticket_type": "single"}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "EventID")
			},
		},
		{
			name:           "Invalid ticket type",
			requestBody:    `{"event_id": "event-1", "ticket_type": "vip"}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "TicketType")
			},
		},
		{
			name:           "Negative price",
			requestBody:    `{"event_id": "event-1", "price": "-5"}`,
			mockSetup:      func(m *mocks.TicketCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"price must not be negative"}`,
		},
		{
			name:        "Unknown event",
			requestBody: `{"event_id": "missing"}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, mock.AnythingOfType("models.Ticket")).
					Return("", storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Unknown user",
			requestBody: `{"event_id": "event-1", "user_id": "ghost"}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, mock.AnythingOfType("models.Ticket")).
					Return("", storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "Internal server error",
			requestBody: `{"event_id": "event-1"}`,
			mockSetup: func(m *mocks.TicketCreator) {
				m.On("CreateTicket", mock.Anything, mock.AnythingOfType("models.Ticket")).
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create ticket"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewTicketCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/tickets", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockCreator.AssertExpectations(t)
		})
	}
}
