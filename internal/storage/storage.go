// Package storage defines the error taxonomy shared by the persistence
// layer and the HTTP handlers. Handlers match these with errors.Is and
// errors.As to pick status codes and user-visible messages, so the
// storage implementation never leaks driver errors upward unlabelled.
package storage

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrUserNotFound   = errors.New("user not found")

	// ErrNoAvailableSlots is returned when a single booking finds the
	// event sold out; ErrInsufficientSlots when a group booking asks
	// for more slots than remain.
	ErrNoAvailableSlots  = errors.New("no available slots")
	ErrInsufficientSlots = errors.New("not enough available slots")

	// ErrCapacityRange is returned when a slot adjustment would push
	// available_slots outside [0, capacity].
	ErrCapacityRange = errors.New("slot adjustment out of capacity range")

	ErrInvalidTransition = errors.New("invalid ticket status transition")
	ErrTicketNotBooked   = errors.New("ticket is not booked")
)

// GroupSizeError is returned when a group booking exceeds the event's
// maximum group size. It carries the limit so handlers can report it.
type GroupSizeError struct {
	Limit int
}

func (e *GroupSizeError) Error() string {
	return fmt.Sprintf("group size exceeds the maximum of %d", e.Limit)
}
