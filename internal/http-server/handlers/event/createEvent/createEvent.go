package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"ticketBooker/internal/http-server/middleware/mwidentity"
	"ticketBooker/internal/lib/api/response"
	"ticketBooker/internal/lib/logger/sl"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"
)

type EventRequest struct {
	Title        string          `json:"title" validate:"required"`
	Description  string          `json:"description"`
	Location     string          `json:"location" validate:"required"`
	EventDate    time.Time       `json:"event_date" validate:"required"`
	Capacity     int             `json:"capacity" validate:"required,gte=1"`
	TicketPrice  decimal.Decimal `json:"ticket_price"`
	MaxGroupSize int             `json:"max_group_size" validate:"required,gte=1"`
}

type EventResponse struct {
	response.Response
	EventID string `json:"event_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) (string, error)
}

func New(log *slog.Logger, event EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

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
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if req.TicketPrice.IsNegative() {
			log.Error("negative ticket price")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("ticket_price must not be negative"))

			return
		}

		eventID, err := event.CreateEvent(r.Context(), models.Event{
			Title:        req.Title,
			Description:  req.Description,
			Location:     req.Location,
			EventDate:    req.EventDate,
			Capacity:     req.Capacity,
			TicketPrice:  req.TicketPrice,
			MaxGroupSize: req.MaxGroupSize,
			CreatedBy:    mwidentity.UserID(r.Context()),
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))

			if errors.Is(err, storage.ErrUserNotFound) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("user not found"))

				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.String("event_id", eventID))

		responseOK(w, r, eventID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID string) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
	})
}
