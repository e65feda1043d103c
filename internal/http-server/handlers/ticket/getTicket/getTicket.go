package getTicket

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

type TicketInfoResponse struct {
	response.Response
	Ticket *models.Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketProvider
type TicketProvider interface {
	GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error)
}

func New(log *slog.Logger, provider TicketProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.getTicket.New"

		log = log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		ticket, err := provider.GetTicket(r.Context(), ticketID)
		if err != nil {
			log.Error("failed to get ticket", sl.Err(err))

			if errors.Is(err, storage.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket"))
			return
		}

		log.Info("ticket retrieved")

		responseOK(w, r, ticket)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticket *models.Ticket) {
	render.JSON(w, r, TicketInfoResponse{
		Response: response.OK(),
		Ticket:   ticket,
	})
}
