package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"ticketBooker/internal/models"
	"ticketBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func (s *Storage) CreateTicket(ctx context.Context, ticket models.Ticket) (string, error) {
	query := `
		INSERT INTO tickets (ticket_id, event_id, user_id, booking_status,
			ticket_type, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ticket_id`

	status := ticket.BookingStatus
	if status == "" {
		status = models.TicketStatusAvailable
	}
	ticketType := ticket.TicketType
	if ticketType == "" {
		ticketType = models.TicketTypeSingle
	}

	var userID sql.NullString
	if ticket.UserID != "" {
		userID = sql.NullString{String: ticket.UserID, Valid: true}
	}

	var id string
	err := s.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		ticket.EventID,
		userID,
		status,
		ticketType,
		ticket.Price,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			switch pqErr.Constraint {
			case "tickets_user_id_fkey":
				return "", storage.ErrUserNotFound
			default:
				return "", storage.ErrEventNotFound
			}
		}
		return "", fmt.Errorf("failed to create ticket: %w", err)
	}

	return id, nil
}

func (s *Storage) GetTicket(ctx context.Context, ticketID string) (*models.Ticket, error) {
	query := ticketSelect + ` WHERE ticket_id = $1`

	ticket, err := scanTicket(s.DB.QueryRowContext(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return ticket, nil
}

func (s *Storage) GetTicketsByEvent(ctx context.Context, eventID string) ([]models.Ticket, error) {
	query := ticketSelect + ` WHERE event_id = $1 ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, *ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickets: %w", err)
	}

	return tickets, nil
}

// UpdateTicketStatus moves a ticket along the booking state machine.
// Illegal transitions are rejected before anything is written.
func (s *Storage) UpdateTicketStatus(ctx context.Context, ticketID, newStatus string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ticket, err := lockTicketTx(ctx, tx, ticketID)
	if err != nil {
		return err
	}

	if err := setTicketStatusTx(ctx, tx, ticket, newStatus); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Storage) DeleteTicket(ctx context.Context, ticketID string) error {
	query := `DELETE FROM tickets WHERE ticket_id = $1`

	result, err := s.DB.ExecContext(ctx, query, ticketID)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	if affected == 0 {
		return storage.ErrTicketNotFound
	}

	return nil
}

const ticketSelect = `
	SELECT ticket_id, event_id, user_id, booking_status, ticket_type,
		price, booking_date, created_at
	FROM tickets`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTicket(row rowScanner) (*models.Ticket, error) {
	var ticket models.Ticket
	var userID sql.NullString
	var bookingDate sql.NullTime

	err := row.Scan(
		&ticket.ID,
		&ticket.EventID,
		&userID,
		&ticket.BookingStatus,
		&ticket.TicketType,
		&ticket.Price,
		&bookingDate,
		&ticket.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if userID.Valid {
		ticket.UserID = userID.String
	}
	if bookingDate.Valid {
		t := bookingDate.Time
		ticket.BookingDate = &t
	}

	return &ticket, nil
}

// lockTicketTx loads a ticket row under FOR UPDATE so booking and
// cancellation on the same ticket are mutually exclusive.
func lockTicketTx(ctx context.Context, tx *sql.Tx, ticketID string) (*models.Ticket, error) {
	query := ticketSelect + ` WHERE ticket_id = $1 FOR UPDATE`

	ticket, err := scanTicket(tx.QueryRowContext(ctx, query, ticketID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to lock ticket: %w", err)
	}

	return ticket, nil
}

// setTicketStatusTx validates the transition against the ticket's
// current status and writes the new one. Moving to booked stamps the
// booking date; leaving booked keeps it for the audit trail.
func setTicketStatusTx(ctx context.Context, tx *sql.Tx, ticket *models.Ticket, newStatus string) error {
	if !models.ValidTicketTransition(ticket.BookingStatus, newStatus) {
		return fmt.Errorf("%w: %s -> %s", storage.ErrInvalidTransition, ticket.BookingStatus, newStatus)
	}

	var err error
	if newStatus == models.TicketStatusBooked {
		query := `
			UPDATE tickets
			SET booking_status = $2, booking_date = NOW()
			WHERE ticket_id = $1`
		_, err = tx.ExecContext(ctx, query, ticket.ID, newStatus)
	} else {
		query := `
			UPDATE tickets
			SET booking_status = $2
			WHERE ticket_id = $1`
		_, err = tx.ExecContext(ctx, query, ticket.ID, newStatus)
	}
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}

	return nil
}
