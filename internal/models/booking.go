package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking-history statuses. A history row stays after cancellation and
// is flagged cancelled instead of being deleted, so the ledger doubles
// as an audit trail.
const (
	HistoryStatusActive    = "active"
	HistoryStatusCancelled = "cancelled"
)

type BookingHistory struct {
	ID          string    `json:"history_id"`
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	TicketID    string    `json:"ticket_id"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
}

// BookingDetail is a history entry joined with its ticket and event
// summaries, as returned by the "my bookings" listing.
type BookingDetail struct {
	HistoryID   string          `json:"history_id"`
	TicketID    string          `json:"ticket_id"`
	EventID     string          `json:"event_id"`
	EventTitle  string          `json:"event_title"`
	EventDate   time.Time       `json:"event_date"`
	Location    string          `json:"location"`
	TicketType  string          `json:"ticket_type"`
	Price       decimal.Decimal `json:"price"`
	BookingDate time.Time       `json:"booking_date"`
	Status      string          `json:"status"`
}
