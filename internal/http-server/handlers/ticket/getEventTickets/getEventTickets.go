package getEventTickets

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

type EventTicketsResponse struct {
	response.Response
	Tickets []models.Ticket `json:"tickets"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketsProvider
type TicketsProvider interface {
	GetTicketsByEvent(ctx context.Context, eventID string) ([]models.Ticket, error)
}

func New(log *slog.Logger, provider TicketsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getEventTickets.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		tickets, err := provider.GetTicketsByEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to get event tickets", sl.Err(err))

			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event tickets"))
			return
		}

		log.Info("event tickets retrieved", slog.Int("count", len(tickets)))

		responseOK(w, r, tickets)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, tickets []models.Ticket) {
	render.JSON(w, r, EventTicketsResponse{
		Response: response.OK(),
		Tickets:  tickets,
	})
}
