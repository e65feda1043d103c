package getEvent

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketBooker/internal/http-server/handlers/event/getEvent/mocks"
	"ticketBooker/internal/lib/logger/handlers/slogdiscard"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvent := &models.Event{
		ID:             "event-1",
		Title:          "Go Conference",
		Location:       "Berlin",
		EventDate:      time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
		Capacity:       100,
		AvailableSlots: 42,
		TicketPrice:    decimal.NewFromInt(50),
		MaxGroupSize:   5,
		Status:         models.EventStatusApproved,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventProvider)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("GetEvent", mock.Anything, "event-1").Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response EventInfoResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				require.NotNil(t, response.Event)
				assert.Equal(t, "event-1", response.Event.ID)
				assert.Equal(t, "Go Conference", response.Event.Title)
				assert.Equal(t, 42, response.Event.AvailableSlots)
			},
		},
		{
			name:    "Event not found",
			eventID: "missing",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("GetEvent", mock.Anything, "missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Internal server error",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventProvider) {
				m.On("GetEvent", mock.Anything, "event-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewEventProvider(t)
			tc.mockSetup(mockProvider)

			router := chi.NewRouter()
			router.Get("/events/{id}", New(logger, mockProvider))

			req, err := http.NewRequest("GET", "/events/"+tc.eventID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockProvider.AssertExpectations(t)
		})
	}
}
