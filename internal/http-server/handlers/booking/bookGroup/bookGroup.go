package bookGroup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
	"ticketBooker/internal/monitoring"
	"ticketBooker/internal/queue"
	"ticketBooker/internal/storage"
)

type GroupBookingRequest struct {
	UserID string   `json:"user_id" validate:"required"`
	Count  int      `json:"count" validate:"required,gte=1"`
	Emails []string `json:"emails" validate:"required,min=1,dive,email"`
}

type GroupBookingResponse struct {
	response.Response
	Tickets    []models.Ticket `json:"tickets"`
	TotalPrice string          `json:"total_price"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GroupBooker
type GroupBooker interface {
	BookGroup(ctx context.Context, eventID, userID string, count int) ([]models.Ticket, decimal.Decimal, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NotificationPublisher
type NotificationPublisher interface {
	PublishGroupBooking(ctx context.Context, event queue.GroupBookingNotification) error
}

func New(log *slog.Logger, booking GroupBooker, publisher NotificationPublisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.bookGroup.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req GroupBookingRequest

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
		tickets, totalPrice, err := booking.BookGroup(r.Context(), eventID, req.UserID, req.Count)
		monitoring.ObserveBooking("book_group", time.Since(start))
		if err != nil {
			log.Error("failed to book group tickets", sl.Err(err))
			monitoring.TrackBooking("book_group", "failure")

			var groupSizeErr *storage.GroupSizeError
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.As(err, &groupSizeErr):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(groupSizeErr.Error()))
			case errors.Is(err, storage.ErrInsufficientSlots):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("not enough available slots"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book group tickets"))
			}
			return
		}

		log.Info("group tickets booked successfully",
			slog.Int("count", len(tickets)),
			slog.String("total_price", totalPrice.String()),
		)
		monitoring.TrackBooking("book_group", "success")
		monitoring.AddTicketsBooked(len(tickets))

		// Notification is fire-and-forget: a publish failure is logged
		// and the committed booking stands.
		if publisher != nil {
			ticketIDs := make([]string, 0, len(tickets))
			for _, t := range tickets {
				ticketIDs = append(ticketIDs, t.ID)
			}
			notification := queue.GroupBookingNotification{
				EventID:     eventID,
				UserID:      req.UserID,
				Emails:      req.Emails,
				TicketIDs:   ticketIDs,
				TicketCount: len(tickets),
				TotalPrice:  totalPrice.String(),
				BookedAt:    time.Now().UTC().Format(time.RFC3339),
			}
			if err := publisher.PublishGroupBooking(r.Context(), notification); err != nil {
				log.Error("failed to publish booking notification", sl.Err(err))
			}
		}

		responseOK(w, r, tickets, totalPrice)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tickets []models.Ticket, totalPrice decimal.Decimal) {
	render.JSON(w, r, GroupBookingResponse{
		Response:   response.OK(),
		Tickets:    tickets,
		TotalPrice: totalPrice.String(),
	})
}
