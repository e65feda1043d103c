package bookTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
	"ticketBooker/internal/monitoring"
	"ticketBooker/internal/storage"
)

type BookingRequest struct {
	TicketID string `json:"ticket_id" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketBooker
type TicketBooker interface {
	BookTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
}

func New(log *slog.Logger, booking TicketBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.bookTicket.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		start := time.Now()
		ticket, err := booking.BookTicket(r.Context(), req.TicketID)
		monitoring.ObserveBooking("book_single", time.Since(start))
		if err != nil {
			log.Error("failed to book ticket", sl.Err(err))
			monitoring.TrackBooking("book_single", "failure")

			switch {
			case errors.Is(err, storage.ErrTicketNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrNoAvailableSlots):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("no available slots"))
			case errors.Is(err, storage.ErrInvalidTransition):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("ticket is not available for booking"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book ticket"))
			}
			return
		}

		log.Info("ticket booked successfully", slog.String("ticket_id", ticket.ID))
		monitoring.TrackBooking("book_single", "success")
		monitoring.AddTicketsBooked(1)

		responseOK(w, r, ticket)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticket *models.Ticket) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Ticket:   ticket,
	})
}
