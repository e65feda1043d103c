package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"ticketBooker/internal/models"

	"github.com/google/uuid"
)

// recordBookingTx appends an active history entry for a freshly booked
// ticket. Runs inside the booking transaction so a failed booking never
// leaves a dangling ledger row.
func recordBookingTx(ctx context.Context, tx *sql.Tx, userID, ticketID, eventID string) error {
	query := `
		INSERT INTO booking_history (history_id, user_id, event_id, ticket_id, booking_date, status)
		VALUES ($1, $2, $3, $4, NOW(), $5)`

	_, err := tx.ExecContext(ctx, query,
		uuid.NewString(), userID, eventID, ticketID, models.HistoryStatusActive)
	if err != nil {
		return fmt.Errorf("failed to record booking history: %w", err)
	}

	return nil
}

// cancelHistoryTx flags a ticket's active history entries as cancelled.
// Entries are preserved rather than deleted so past bookings stay
// auditable.
func cancelHistoryTx(ctx context.Context, tx *sql.Tx, ticketID string) error {
	query := `
		UPDATE booking_history
		SET status = $2
		WHERE ticket_id = $1 AND status = $3`

	_, err := tx.ExecContext(ctx, query,
		ticketID, models.HistoryStatusCancelled, models.HistoryStatusActive)
	if err != nil {
		return fmt.Errorf("failed to cancel booking history: %w", err)
	}

	return nil
}

// ListBookingsByUser returns the user's active bookings joined with
// ticket and event summaries, newest first. An empty slice means the
// user holds no bookings; the caller decides how to report that.
func (s *Storage) ListBookingsByUser(ctx context.Context, userID string) ([]models.BookingDetail, error) {
	query := `
		SELECT h.history_id, h.ticket_id, h.event_id,
			e.title, e.event_date, e.location,
			t.ticket_type, t.price,
			h.booking_date, h.status
		FROM booking_history h
		JOIN tickets t ON t.ticket_id = h.ticket_id
		JOIN events e ON e.event_id = h.event_id
		WHERE h.user_id = $1 AND h.status = $2
		ORDER BY h.booking_date DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID, models.HistoryStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking history: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetail
	for rows.Next() {
		var b models.BookingDetail
		err := rows.Scan(
			&b.HistoryID,
			&b.TicketID,
			&b.EventID,
			&b.EventTitle,
			&b.EventDate,
			&b.Location,
			&b.TicketType,
			&b.Price,
			&b.BookingDate,
			&b.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}
