package request

type CreateBookingRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid4"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed paid cancelled"`
}

type ProcessPaymentRequest struct {
	BookingID   string  `json:"booking_id" validate:"required,uuid4"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	PaymentType string  `json:"payment_type" validate:"required,min=2,max=50"`
}

type BookingReportRequest struct {
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}
