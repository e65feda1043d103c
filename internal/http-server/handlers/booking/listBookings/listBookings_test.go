package listBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ticketBooker/internal/http-server/handlers/booking/listBookings/mocks"
	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/lib/logger/handlers/slogdiscard"
	"ticketBooker/internal/models"
)

func TestListBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	bookingDate := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	testBookings := []models.BookingDetail{
		{
			HistoryID:   "history-1",
			TicketID:    "ticket-1",
			EventID:     "event-1",
			EventTitle:  "Go Conference",
			EventDate:   bookingDate.Add(30 * 24 * time.Hour),
			Location:    "Berlin",
			TicketType:  models.TicketTypeSingle,
			Price:       decimal.NewFromInt(50),
			BookingDate: bookingDate,
			Status:      models.HistoryStatusActive,
		},
	}

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(m *mocks.BookingLister)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:   "Success",
			userID: "user-1",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListBookingsByUser", mock.Anything, "user-1").Return(testBookings, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var response BookingsResponse
				err := json.Unmarshal([]byte(body), &response)
				require.NoError(t, err)

				assert.Equal(t, "OK", response.Status)
				require.Len(t, response.Bookings, 1)
				assert.Equal(t, "history-1", response.Bookings[0].HistoryID)
				assert.Equal(t, "Go Conference", response.Bookings[0].EventTitle)
				assert.Equal(t, models.HistoryStatusActive, response.Bookings[0].Status)
			},
		},
		{
			name:   "No bookings",
			userID: "user-2",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListBookingsByUser", mock.Anything, "user-2").Return([]models.BookingDetail{}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"no bookings found for this user"}`,
		},
		{
			name:           "Missing identity",
			userID:         "",
			mockSetup:      func(m *mocks.BookingLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:   "Internal server error",
			userID: "user-1",
			mockSetup: func(m *mocks.BookingLister) {
				m.On("ListBookingsByUser", mock.Anything, "user-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get booking history"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewBookingLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req, err := http.NewRequest("GET", "/bookings", nil)
			require.NoError(t, err)

			if tc.userID != "" {
				req = req.WithContext(mwidentity.WithIdentity(req.Context(), tc.userID, "attendee"))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}

			mockLister.AssertExpectations(t)
		})
	}
}
