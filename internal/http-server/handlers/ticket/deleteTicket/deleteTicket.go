package deleteTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketDeleter
type TicketDeleter interface {
	DeleteTicket(ctx context.Context, ticketID string) error
}

func New(log *slog.Logger, deleter TicketDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.deleteTicket.New"

		log = log.With(slog.String("op", op))

		ticketID := chi.URLParam(r, "id")
		if ticketID == "" {
			log.Error("ticket id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket id is required"))
			return
		}

		log = log.With(slog.String("ticket_id", ticketID))

		err := deleter.DeleteTicket(r.Context(), ticketID)
		if err != nil {
			log.Error("failed to delete ticket", sl.Err(err))

			if errors.Is(err, storage.ErrTicketNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("ticket not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete ticket"))
			return
		}

		log.Info("ticket deleted")

		render.JSON(w, r, response.OK())
	}
}
