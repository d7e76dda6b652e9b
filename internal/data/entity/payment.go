package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Payment rows are append-only: once recorded they are never updated or deleted.
type Payment struct {
	BaseSimple
	BookingID   uuid.UUID     `db:"booking_id"`
	Amount      float64       `db:"amount"`
	PaymentType string        `db:"payment_type"`
	PaymentDate time.Time     `db:"payment_date"`
	Status      PaymentStatus `db:"status"`
}
