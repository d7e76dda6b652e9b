package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPaid      BookingStatus = "paid"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions defines the booking state machine:
// pending → confirmed → paid, cancelled reachable from pending or confirmed.
// paid and cancelled are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusPaid, BookingStatusCancelled},
	BookingStatusPaid:      {},
	BookingStatusCancelled: {},
}

// ValidBookingStatus reports whether s is a known status value
func ValidBookingStatus(s BookingStatus) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransition reports whether a booking may move from one status to another
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	PackageID   uuid.UUID     `db:"package_id"`
	Status      BookingStatus `db:"status"`
	TotalAmount float64       `db:"total_amount"`
	AmountPaid  float64       `db:"amount_paid"`
}

// IsTerminal reports whether no further status change is allowed
func (b *Booking) IsTerminal() bool {
	return len(allowedTransitions[b.Status]) == 0
}

// Cancellable reports whether the booking may still be cancelled
func (b *Booking) Cancellable() bool {
	return CanTransition(b.Status, BookingStatusCancelled)
}
