package createEvent

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketBooker/internal/http-server/handlers/event/createEvent/mocks"
	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/lib/logger/handlers/slogdiscard"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

func TestCreateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	validBody := `{
		"title": "Go Conference",
		"description": "Annual conference",
		"location": "Berlin",
		"event_date": "2026-12-25T18:00:00Z",
		"capacity": 100,
		"ticket_price": "49.90",
		"max_group_size": 5
	}`

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
					return e.Title == "Go Conference" &&
						e.Location == "Berlin" &&
						e.Capacity == 100 &&
						e.MaxGroupSize == 5 &&
						e.TicketPrice.String() == "49.9" &&
						e.CreatedBy == "manager-1"
				})).Return("8f14e45f-ea2f-4f9a-b1c0-aaaabbbbcccc", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","event_id":"8f14e45f-ea2f-4f9a-b1c0-aaaabbbbcccc"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name: "Missing title",
			requestBody: `{
				"location": "Berlin",
				"event_date": "2026-12-25T18:00:00Z",
				"capacity": 100,
				"max_group_size": 5
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Title")
			},
		},
		{
			name: "Missing location",
			requestBody: `{
				"title": "Go Conference",
				"event_date": "2026-12-25T18:00:00Z",
				"capacity": 100,
				"max_group_size": 5
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Location")
			},
		},
		{
			name: "Zero capacity",
			requestBody: `{
				"title": "Go Conference",
				"location": "Berlin",
				"event_date": "2026-12-25T18:00:00Z",
				"capacity": 0,
				"max_group_size": 5
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Capacity")
			},
		},
		{
			name: "Negative ticket price",
			requestBody: `{
				"title": "Go Conference",
				"location": "Berlin",
				"event_date": "2026-12-25T18:00:00Z",
				"capacity": 100,
				"ticket_price": "-10",
				"max_group_size": 5
			}`,
			mockSetup:      func(m *mocks.EventCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"ticket_price must not be negative"}`,
		},
		{
			name:        "Unknown creator",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, mock.AnythingOfType("models.Event")).
					Return("", storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:        "Internal server error",
			requestBody: validBody,
			mockSetup: func(m *mocks.EventCreator) {
				m.On("CreateEvent", mock.Anything, mock.AnythingOfType("models.Event")).
					Return("", errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to add event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewEventCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			req, err := http.NewRequest("POST", "/events", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			req = req.WithContext(mwidentity.WithIdentity(req.Context(), "manager-1", "manager"))

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

func TestResponseOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	responseOK(rr, req, "some-event-id")

	assert.Equal(t, http.StatusOK, rr.Code)

	var actualResponse EventResponse
	err := json.Unmarshal(rr.Body.Bytes(), &actualResponse)
	require.NoError(t, err)

	assert.Equal(t, "OK", actualResponse.Status)
	assert.Equal(t, "", actualResponse.Error)
	assert.Equal(t, "some-event-id", actualResponse.EventID)
}
