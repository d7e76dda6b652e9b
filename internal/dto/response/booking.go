package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	PackageID   string               `json:"package_id"`
	PackageName string               `json:"package_name,omitempty"`
	Status      entity.BookingStatus `json:"status"`
	TotalAmount float64              `json:"total_amount"`
	AmountPaid  float64              `json:"amount_paid"`
	CreatedAt   time.Time            `json:"created_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Username string            `json:"username,omitempty"`
	Payments []PaymentResponse `json:"payments"`
}

type PaymentResponse struct {
	ID          string               `json:"id"`
	BookingID   string               `json:"booking_id"`
	Amount      float64              `json:"amount"`
	PaymentType string               `json:"payment_type"`
	PaymentDate time.Time            `json:"payment_date"`
	Status      entity.PaymentStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type BookingReportResponse struct {
	StartDate    string            `json:"start_date"`
	EndDate      string            `json:"end_date"`
	TotalAmount  float64           `json:"total_amount"`
	TotalPaid    float64           `json:"total_paid"`
	BookingCount int               `json:"booking_count"`
	Bookings     []BookingResponse `json:"bookings"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, packageName string) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		PackageID:   booking.PackageID.String(),
		PackageName: packageName,
		Status:      booking.Status,
		TotalAmount: booking.TotalAmount,
		AmountPaid:  booking.AmountPaid,
		CreatedAt:   booking.CreatedAt,
	}
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID.String(),
		BookingID:   payment.BookingID.String(),
		Amount:      payment.Amount,
		PaymentType: payment.PaymentType,
		PaymentDate: payment.PaymentDate,
		Status:      payment.Status,
		CreatedAt:   payment.CreatedAt,
	}
}
