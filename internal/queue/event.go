// Package queue defines message payloads exchanged over the message
// broker and the publisher/consumer pair moving them.
package queue

// GroupBookingNotification is published after a group booking commits.
// It carries enough for the notification consumer to mail every group
// member without touching the primary database. Delivery is
// fire-and-forget: a lost message never unwinds the booking.
type GroupBookingNotification struct {
	EventID     string   `json:"event_id"`
	EventTitle  string   `json:"event_title"`
	UserID      string   `json:"user_id"`
	Emails      []string `json:"emails"`
	TicketIDs   []string `json:"ticket_ids"`
	TicketCount int      `json:"ticket_count"`
	TotalPrice  string   `json:"total_price"`
	BookedAt    string   `json:"booked_at"`
}

const notificationQueueName = "booking.notifications"
