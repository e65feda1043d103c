package listBookings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingDetail `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingLister
type BookingLister interface {
	ListBookingsByUser(ctx context.Context, userID string) ([]models.BookingDetail, error)
}

func New(log *slog.Logger, bookings BookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		userID := mwidentity.UserID(r.Context())
		if userID == "" {
			log.Error("user id is required")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.String("user_id", userID))

		list, err := bookings.ListBookingsByUser(r.Context(), userID)
		if err != nil {
			log.Error("failed to get booking history", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get booking history"))
			return
		}

		if len(list) == 0 {
			log.Info("no bookings found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no bookings found for this user"))
			return
		}

		log.Info("booking history retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.BookingDetail) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
