package createTicket

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

type TicketRequest struct {
	EventID    string          `json:"event_id" validate:"required"`
	UserID     string          `json:"user_id"`
	TicketType string          `json:"ticket_type" validate:"omitempty,oneof=single group"`
	Price      decimal.Decimal `json:"price"`
}

type TicketResponse struct {
	response.Response
	TicketID string `json:"ticket_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketCreator
type TicketCreator interface {
	CreateTicket(ctx context.Context, ticket models.Ticket) (string, error)
}

func New(log *slog.Logger, creator TicketCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.ticket.createTicket.New"

		log = log.With(slog.String("op", op))

		var req TicketRequest

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

		if req.Price.IsNegative() {
			log.Error("negative ticket price")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("price must not be negative"))
			return
		}

		ticketID, err := creator.CreateTicket(r.Context(), models.Ticket{
			EventID:    req.EventID,
			UserID:     req.UserID,
			TicketType: req.TicketType,
			Price:      req.Price,
		})
		if err != nil {
			log.Error("failed to create ticket", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("user not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create ticket"))
			}
			return
		}

		log.Info("ticket created", slog.String("ticket_id", ticketID))

		responseOK(w, r, ticketID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, ticketID string) {
	render.JSON(w, r, TicketResponse{
		Response: response.OK(),
		TicketID: ticketID,
	})
}
