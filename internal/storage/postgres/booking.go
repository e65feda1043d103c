package postgres

import (
	"context"
	"fmt"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookTicket books a single pre-created ticket. The ticket and its
// event are locked for the duration of the transaction, so two racing
// bookings over the last slot resolve to exactly one success.
func (s *Storage) BookTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ticket, err := lockTicketTx(ctx, tx, ticketID)
	if err != nil {
		return nil, err
	}

	event, err := lockEventTx(ctx, tx, ticket.EventID)
	if err != nil {
		return nil, err
	}

	if event.AvailableSlots <= 0 {
		return nil, storage.ErrNoAvailableSlots
	}

	if err := setTicketStatusTx(ctx, tx, ticket, models.TicketStatusBooked); err != nil {
		return nil, err
	}

	if ticket.UserID != "" {
		if err := recordBookingTx(ctx, tx, ticket.UserID, ticket.ID, ticket.EventID); err != nil {
			return nil, err
		}
	}

	if err := adjustSlotsTx(ctx, tx, ticket.EventID, -1, storage.ErrNoAvailableSlots); err != nil {
		return nil, err
	}

	booked, err := scanTicket(tx.QueryRowContext(ctx, ticketSelect+` WHERE ticket_id = $1`, ticketID))
	if err != nil {
		return nil, fmt.Errorf("failed to reload booked ticket: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booked, nil
}

// BookGroup reserves count tickets for a single purchaser in one
// transaction: either every ticket, history entry and the slot
// decrement land together, or none of them do. Returns the created
// tickets and the total price (count x ticket_price).
func (s *Storage) BookGroup(ctx context.Context, eventID, userID string, count int) ([]models.Ticket, decimal.Decimal, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	event, err := lockEventTx(ctx, tx, eventID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	if count > event.MaxGroupSize {
		return nil, decimal.Zero, &storage.GroupSizeError{Limit: event.MaxGroupSize}
	}

	if event.AvailableSlots < count {
		return nil, decimal.Zero, storage.ErrInsufficientSlots
	}

	insertQuery := `
		INSERT INTO tickets (ticket_id, event_id, user_id, booking_status,
			ticket_type, price, booking_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ticket_id, event_id, user_id, booking_status, ticket_type,
			price, booking_date, created_at`

	tickets := make([]models.Ticket, 0, count)
	for i := 0; i < count; i++ {
		ticket, err := scanTicket(tx.QueryRowContext(ctx, insertQuery,
			uuid.NewString(),
			eventID,
			userID,
			models.TicketStatusBooked,
			models.TicketTypeGroup,
			event.TicketPrice,
		))
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to create group ticket: %w", err)
		}

		if err := recordBookingTx(ctx, tx, userID, ticket.ID, eventID); err != nil {
			return nil, decimal.Zero, err
		}

		tickets = append(tickets, *ticket)
	}

	if err := adjustSlotsTx(ctx, tx, eventID, -count, storage.ErrInsufficientSlots); err != nil {
		return nil, decimal.Zero, err
	}

	if err := tx.Commit(); err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to commit group booking: %w", err)
	}

	total := event.TicketPrice.Mul(decimal.NewFromInt(int64(count)))

	return tickets, total, nil
}

// CancelBooking releases a booked ticket: the ticket returns to
// available, its history entries are flagged cancelled and the slot is
// restored, all inside one transaction so the ticket is never visible
// as available while the slot is still consumed.
func (s *Storage) CancelBooking(ctx context.Context, ticketID string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ticket, err := lockTicketTx(ctx, tx, ticketID)
	if err != nil {
		return err
	}

	if ticket.BookingStatus != models.TicketStatusBooked {
		return storage.ErrTicketNotBooked
	}

	if err := setTicketStatusTx(ctx, tx, ticket, models.TicketStatusAvailable); err != nil {
		return err
	}

	if err := cancelHistoryTx(ctx, tx, ticket.ID); err != nil {
		return err
	}

	if err := adjustSlotsTx(ctx, tx, ticket.EventID, 1, storage.ErrCapacityRange); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cancellation: %w", err)
	}

	return nil
}
