package cancelBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/monitoring"
	"ticketBooker/internal/storage"
)

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBooking(ctx context.Context, ticketID string) error
}

func New(log *slog.Logger, booking BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "ticket_id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		start := time.Now()
		err := booking.CancelBooking(r.Context(), ticketID)
		monitoring.ObserveBooking("cancel", time.Since(start))
		if err != nil {
			log.Error("failed to cancel booking", sl.Err(err))
			monitoring.TrackBooking("cancel", "failure")

			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, storage.ErrTicketNotBooked):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket is not booked"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled successfully")
		monitoring.TrackBooking("cancel", "success")

		responseOK(w, r)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, CancelResponse{
		Response: response.OK(),
	})
}
