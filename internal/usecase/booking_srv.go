package usecase

import (
	"context"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Registered users
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)

	// Admin
	GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingDetailResponse, error)
	UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.BookingResponse, error)
	GenerateReport(ctx context.Context, req *request.BookingReportRequest) (*response.BookingReportResponse, error)
}

type bookingService struct {
	repo *repository.Repository // grouping booking, payment, package & user repos
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package ID format", apperr.ErrValidation)
	}

	// 2. Load the package; its current price fixes the amount owed
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		s.log.Error("Failed to find package", zap.Error(err), zap.String("package_id", req.PackageID))
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s: %w", req.PackageID, apperr.ErrNotFound)
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("%w: package %s is not bookable", apperr.ErrConflict, pkg.Name)
	}

	// 3. Create booking, directly confirmed, with totals initialized
	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		PackageID:   packageID,
		Status:      entity.BookingStatusConfirmed,
		TotalAmount: pkg.Price,
		AmountPaid:  0,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("package_id", req.PackageID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("package", pkg.Name),
		zap.Float64("total_amount", booking.TotalAmount),
	)

	resp := response.BookingToResponse(booking, pkg.Name)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID uuid.UUID) (*response.BookingDetailResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), apperr.ErrNotFound)
	}

	detail := &response.BookingDetailResponse{
		BookingResponse: response.BookingToResponse(booking, s.packageName(ctx, booking.PackageID)),
	}

	if user, _ := s.repo.User.FindByID(ctx, booking.UserID); user != nil {
		detail.Username = user.Username
	}

	payments, err := s.repo.Payment.FindByBookingID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to load booking payments", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("load booking payments: %w", err)
	}

	detail.Payments = make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		detail.Payments[i] = response.PaymentToResponse(payment)
	}

	return detail, nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID uuid.UUID, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	// 1. Validate the requested status value
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	newStatus := entity.BookingStatus(req.Status)
	if !entity.ValidBookingStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %s", apperr.ErrValidation, req.Status)
	}

	// 2. Load booking
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), apperr.ErrNotFound)
	}

	// 3. Enforce the transition table
	if !entity.CanTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s",
			apperr.ErrConflict, booking.Status, newStatus)
	}

	// 4. Persist
	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	booking.Status = newStatus
	resp := response.BookingToResponse(booking, s.packageName(ctx, booking.PackageID))
	return &resp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID.String(), apperr.ErrNotFound)
	}

	// Only pending or confirmed bookings may be cancelled
	if !booking.Cancellable() {
		return fmt.Errorf("%w: booking is already %s", apperr.ErrConflict, booking.Status)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID.String()))
	return nil
}

func (s *bookingService) ProcessPayment(ctx context.Context, req *request.ProcessPaymentRequest) (*response.BookingResponse, error) {
	// 1. Validate: amount must be positive
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Process payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID format", apperr.ErrValidation)
	}

	// 2. Build the ledger entry
	now := time.Now()
	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		BookingID:   bookingID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		PaymentDate: now,
		Status:      entity.PaymentStatusCompleted,
	}

	// 3. Apply atomically: insert + increment + conditional flip to paid
	booking, err := s.repo.Payment.ApplyPayment(ctx, payment)
	if err != nil {
		s.log.Warn("Failed to apply payment",
			zap.Error(err),
			zap.String("booking_id", req.BookingID),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("apply payment: %w", err)
	}

	s.log.Info("Payment processed",
		zap.String("payment_id", payment.ID.String()),
		zap.String("booking_id", req.BookingID),
		zap.Float64("amount", req.Amount),
		zap.Float64("amount_paid", booking.AmountPaid),
		zap.String("booking_status", string(booking.Status)),
	)

	resp := response.BookingToResponse(booking, s.packageName(ctx, booking.PackageID))
	return &resp, nil
}

func (s *bookingService) GenerateReport(ctx context.Context, req *request.BookingReportRequest) (*response.BookingReportResponse, error) {
	// 1. Validate and parse the date range
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Report validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date, use YYYY-MM-DD", apperr.ErrValidation)
	}

	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date, use YYYY-MM-DD", apperr.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date before start date", apperr.ErrValidation)
	}

	// Include the whole end day
	end = end.Add(24*time.Hour - time.Nanosecond)

	// 2. Collect bookings in range
	bookings, err := s.repo.Booking.FindByDateRange(ctx, start, end)
	if err != nil {
		s.log.Error("Failed to generate report", zap.Error(err))
		return nil, fmt.Errorf("generate report: %w", err)
	}

	report := &response.BookingReportResponse{
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BookingCount: len(bookings),
		Bookings:     s.toResponses(ctx, bookings),
	}
	for _, booking := range bookings {
		report.TotalAmount += booking.TotalAmount
		report.TotalPaid += booking.AmountPaid
	}

	return report, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) packageName(ctx context.Context, packageID uuid.UUID) string {
	pkg, _ := s.repo.Package.FindByID(ctx, packageID)
	if pkg == nil {
		return ""
	}
	return pkg.Name
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking, s.packageName(ctx, booking.PackageID))
	}
	return responses
}
