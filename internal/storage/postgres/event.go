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

const (
	pqForeignKeyViolation = "23503"
	pqCheckViolation      = "23514"
)

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (string, error) {
	query := `
		INSERT INTO events (event_id, title, description, location, event_date,
			capacity, available_slots, ticket_price, max_group_size, status,
			created_by, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6, $7, $8, $9, $10, FALSE, NOW(), NOW())
		RETURNING event_id`

	status := event.Status
	if status == "" {
		status = models.EventStatusPending
	}

	var id string
	err := s.DB.QueryRowContext(ctx, query,
		uuid.NewString(),
		event.Title,
		event.Description,
		event.Location,
		event.EventDate,
		event.Capacity,
		event.TicketPrice,
		event.MaxGroupSize,
		status,
		event.CreatedBy,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return "", storage.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to create event: %w", err)
	}

	return id, nil
}

func (s *Storage) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	query := `
		SELECT event_id, title, description, location, event_date,
			capacity, available_slots, ticket_price, max_group_size, status,
			created_by, created_at, updated_at
		FROM events
		WHERE event_id = $1 AND is_deleted = FALSE`

	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Location,
		&event.EventDate,
		&event.Capacity,
		&event.AvailableSlots,
		&event.TicketPrice,
		&event.MaxGroupSize,
		&event.Status,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT event_id, title, description, location, event_date,
			capacity, available_slots, ticket_price, max_group_size, status,
			created_by, created_at, updated_at
		FROM events
		WHERE is_deleted = FALSE
		ORDER BY event_date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.Location,
			&event.EventDate,
			&event.Capacity,
			&event.AvailableSlots,
			&event.TicketPrice,
			&event.MaxGroupSize,
			&event.Status,
			&event.CreatedBy,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// ReviewEvent moves a pending event to approved or rejected.
func (s *Storage) ReviewEvent(ctx context.Context, eventID, status string) error {
	if status != models.EventStatusApproved && status != models.EventStatusRejected {
		return fmt.Errorf("invalid review status %q", status)
	}

	query := `
		UPDATE events
		SET status = $2, updated_at = NOW()
		WHERE event_id = $1 AND is_deleted = FALSE`

	result, err := s.DB.ExecContext(ctx, query, eventID, status)
	if err != nil {
		return fmt.Errorf("failed to review event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to review event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

// DeleteEvent soft-deletes an event. Existing tickets and history are
// kept; the event simply stops resolving through lookups.
func (s *Storage) DeleteEvent(ctx context.Context, eventID string) error {
	query := `
		UPDATE events
		SET is_deleted = TRUE, updated_at = NOW()
		WHERE event_id = $1 AND is_deleted = FALSE`

	result, err := s.DB.ExecContext(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if affected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

func (s *Storage) GetAvailableSlots(ctx context.Context, eventID string) (int, error) {
	query := `
		SELECT available_slots
		FROM events
		WHERE event_id = $1 AND is_deleted = FALSE`

	var slots int
	err := s.DB.QueryRowContext(ctx, query, eventID).Scan(&slots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, storage.ErrEventNotFound
		}
		return 0, fmt.Errorf("failed to get available slots: %w", err)
	}

	return slots, nil
}

// AdjustSlots applies a delta to an event's available_slots as a single
// conditional update: the write only lands when the result stays within
// [0, capacity], so concurrent adjustments can never oversell or
// overflow the event.
func (s *Storage) AdjustSlots(ctx context.Context, eventID string, delta int) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := adjustSlotsTx(ctx, tx, eventID, delta, storage.ErrCapacityRange); err != nil {
		return err
	}

	return tx.Commit()
}

// lockEventTx loads an event row under FOR UPDATE so the surrounding
// transaction serializes against other bookings on the same event.
func lockEventTx(ctx context.Context, tx *sql.Tx, eventID string) (*models.Event, error) {
	query := `
		SELECT event_id, title, capacity, available_slots, ticket_price, max_group_size
		FROM events
		WHERE event_id = $1 AND is_deleted = FALSE
		FOR UPDATE`

	var event models.Event
	err := tx.QueryRowContext(ctx, query, eventID).Scan(
		&event.ID,
		&event.Title,
		&event.Capacity,
		&event.AvailableSlots,
		&event.TicketPrice,
		&event.MaxGroupSize,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to lock event: %w", err)
	}

	return &event, nil
}

// adjustSlotsTx performs the conditional slot update inside an existing
// transaction. When the guard rejects the write on an existing event,
// rangeErr is returned so callers can report the violation in their own
// terms (sold out, not enough slots, out of range).
func adjustSlotsTx(ctx context.Context, tx *sql.Tx, eventID string, delta int, rangeErr error) error {
	query := `
		UPDATE events
		SET available_slots = available_slots + $2, updated_at = NOW()
		WHERE event_id = $1 AND is_deleted = FALSE
			AND available_slots + $2 BETWEEN 0 AND capacity`

	result, err := tx.ExecContext(ctx, query, eventID, delta)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolation {
			return rangeErr
		}
		return fmt.Errorf("failed to adjust available slots: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to adjust available slots: %w", err)
	}
	if affected == 0 {
		var exists bool
		check := `SELECT EXISTS(SELECT 1 FROM events WHERE event_id = $1 AND is_deleted = FALSE)`
		if err := tx.QueryRowContext(ctx, check, eventID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to adjust available slots: %w", err)
		}
		if !exists {
			return storage.ErrEventNotFound
		}
		return rangeErr
	}

	return nil
}
