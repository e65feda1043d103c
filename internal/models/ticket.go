package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticket booking statuses. A ticket moves along
// available -> booked -> cancelled, with booked -> available on
// cancellation and available -> pending for held tickets.
const (
	TicketStatusAvailable = "available"
	TicketStatusPending   = "pending"
	TicketStatusBooked    = "booked"
	TicketStatusCancelled = "cancelled"
)

const (
	TicketTypeSingle = "single"
	TicketTypeGroup  = "group"
)

type Ticket struct {
	ID            string          `json:"ticket_id"`
	EventID       string          `json:"event_id"`
	UserID        string          `json:"user_id,omitempty"`
	BookingStatus string          `json:"booking_status"`
	TicketType    string          `json:"ticket_type"`
	Price         decimal.Decimal `json:"price"`
	BookingDate   *time.Time      `json:"booking_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ValidTicketTransition reports whether a ticket may move from one
// booking status to another. Booking takes available or pending tickets
// to booked; cancellation returns a booked ticket to available or
// retires it as cancelled.
func ValidTicketTransition(from, to string) bool {
	switch from {
	case TicketStatusAvailable:
		return to == TicketStatusBooked || to == TicketStatusPending
	case TicketStatusPending:
		return to == TicketStatusBooked || to == TicketStatusAvailable
	case TicketStatusBooked:
		return to == TicketStatusAvailable || to == TicketStatusCancelled
	default:
		return false
	}
}
