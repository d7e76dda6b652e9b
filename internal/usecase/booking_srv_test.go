package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/dto/request"
	"gym-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPackage(t *testing.T, repo interface {
	Create(ctx context.Context, pkg *entity.Package) error
}, price float64, active bool) *entity.Package {
	t.Helper()
	now := time.Now()
	pkg := &entity.Package{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          "Gold Monthly",
		Price:         price,
		CategoryID:    uuid.New(),
		PackageTypeID: uuid.New(),
		IsActive:      active,
	}
	require.NoError(t, repo.Create(context.Background(), pkg))
	return pkg
}

func TestCreateBookingDerivesTotals(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 150.0, true)
	userID := uuid.New()

	resp, err := service.CreateBooking(ctx, userID, &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, 150.0, resp.TotalAmount, "total is fixed from the package price at booking time")
	assert.Equal(t, 0.0, resp.AmountPaid)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, "Gold Monthly", resp.PackageName)
}

func TestCreateBookingUnknownPackage(t *testing.T) {
	service := NewBookingService(newTestRepository(), testLogger())

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		PackageID: uuid.New().String(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateBookingInactivePackage(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())

	pkg := seedPackage(t, repo.Package, 100.0, false)

	_, err := service.CreateBooking(context.Background(), uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	bookingID := uuid.MustParse(created.ID)

	// confirmed → pending is not in the transition table
	_, err = service.UpdateBookingStatus(ctx, bookingID, &request.UpdateBookingStatusRequest{
		Status: "pending",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	// confirmed → paid is allowed
	resp, err := service.UpdateBookingStatus(ctx, bookingID, &request.UpdateBookingStatusRequest{
		Status: "paid",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusPaid, resp.Status)

	// paid is terminal
	_, err = service.UpdateBookingStatus(ctx, bookingID, &request.UpdateBookingStatusRequest{
		Status: "cancelled",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestCancelBooking(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	bookingID := uuid.MustParse(created.ID)
	require.NoError(t, service.CancelBooking(ctx, bookingID))

	// Cancelled is terminal, a second cancel is rejected
	err = service.CancelBooking(ctx, bookingID)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestProcessPaymentAccumulates(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	// Partial payment keeps the booking confirmed
	resp, err := service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      40.0,
		PaymentType: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, resp.AmountPaid)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)

	// Reaching the total flips the booking to paid
	resp, err = service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      60.0,
		PaymentType: "transfer",
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, resp.AmountPaid)
	assert.Equal(t, entity.BookingStatusPaid, resp.Status)
}

func TestProcessPaymentOverpaymentRejected(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      70.0,
		PaymentType: "cash",
	})
	require.NoError(t, err)

	_, err = service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      70.0,
		PaymentType: "cash",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	booking, err := repo.Booking.FindByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, 70.0, booking.AmountPaid, "rejected payment must not change the ledger")
}

func TestProcessPaymentTerminalBooking(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	bookingID := uuid.MustParse(created.ID)
	require.NoError(t, service.CancelBooking(ctx, bookingID))

	_, err = service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      100.0,
		PaymentType: "cash",
	})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestProcessPaymentConcurrent(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	const workers = 10
	const amount = 10.0

	pkg := seedPackage(t, repo.Package, workers*amount, true)
	created, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, payErr := service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
				BookingID:   created.ID,
				Amount:      amount,
				PaymentType: "cash",
			})
			assert.NoError(t, payErr)
		}()
	}
	wg.Wait()

	booking, err := repo.Booking.FindByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, workers*amount, booking.AmountPaid)
	assert.Equal(t, entity.BookingStatusPaid, booking.Status)

	payments, err := repo.Payment.FindByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Len(t, payments, workers)
}

func TestGetBookingByIDDetail(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	now := time.Now()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username: "alice",
		Email:    "alice@example.com",
		Role:     entity.RoleRegistered,
		IsActive: true,
	}
	require.NoError(t, repo.User.Create(ctx, user))

	pkg := seedPackage(t, repo.Package, 100.0, true)
	created, err := service.CreateBooking(ctx, user.ID, &request.CreateBookingRequest{
		PackageID: pkg.ID.String(),
	})
	require.NoError(t, err)

	_, err = service.ProcessPayment(ctx, &request.ProcessPaymentRequest{
		BookingID:   created.ID,
		Amount:      25.0,
		PaymentType: "cash",
	})
	require.NoError(t, err)

	detail, err := service.GetBookingByID(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)

	assert.Equal(t, "alice", detail.Username)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, 25.0, detail.Payments[0].Amount)
}

func TestGenerateReport(t *testing.T) {
	repo := newTestRepository()
	service := NewBookingService(repo, testLogger())
	ctx := context.Background()

	pkg := seedPackage(t, repo.Package, 100.0, true)
	for i := 0; i < 3; i++ {
		_, err := service.CreateBooking(ctx, uuid.New(), &request.CreateBookingRequest{
			PackageID: pkg.ID.String(),
		})
		require.NoError(t, err)
	}

	report, err := service.GenerateReport(ctx, &request.BookingReportRequest{
		StartDate: time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
		EndDate:   time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, report.BookingCount)
	assert.Equal(t, 300.0, report.TotalAmount)
	assert.Equal(t, 0.0, report.TotalPaid)
}

func TestGenerateReportInvalidRange(t *testing.T) {
	service := NewBookingService(newTestRepository(), testLogger())

	_, err := service.GenerateReport(context.Background(), &request.BookingReportRequest{
		StartDate: "2026-08-30",
		EndDate:   "2026-08-01",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = service.GenerateReport(context.Background(), &request.BookingReportRequest{
		StartDate: "not-a-date",
		EndDate:   "2026-08-30",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
