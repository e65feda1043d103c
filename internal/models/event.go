package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event status values as stored in the events.status column.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

type Event struct {
	ID             string          `json:"event_id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	EventDate      time.Time       `json:"event_date"`
	Capacity       int             `json:"capacity"`
	AvailableSlots int             `json:"available_slots"`
	TicketPrice    decimal.Decimal `json:"ticket_price"`
	MaxGroupSize   int             `json:"max_group_size"`
	Status         string          `json:"status"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
