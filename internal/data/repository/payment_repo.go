package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/apperr"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// ApplyPayment inserts the payment row and increments the booking's
	// amount_paid in one transaction, flipping the booking to paid when the
	// total is reached. Returns the updated booking.
	ApplyPayment(ctx context.Context, payment *entity.Payment) (*entity.Booking, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error)
	CountAll(ctx context.Context) (int64, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) ApplyPayment(ctx context.Context, payment *entity.Payment) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin payment transaction", zap.Error(err))
		return nil, fmt.Errorf("begin payment transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the booking row so concurrent payments serialize here
	var booking entity.Booking
	err = tx.QueryRow(ctx, `
		SELECT id, user_id, package_id, status, total_amount, amount_paid, created_at, updated_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE
	`, payment.BookingID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.PackageID,
		&booking.Status,
		&booking.TotalAmount,
		&booking.AmountPaid,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("booking %s: %w", payment.BookingID.String(), apperr.ErrNotFound)
		}
		r.log.Error("Failed to lock booking for payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", payment.BookingID.String(), err)
	}

	// Checked under the lock: no payments against terminal bookings,
	// and the ledger may never exceed the total owed
	if booking.Status == entity.BookingStatusCancelled || booking.Status == entity.BookingStatusPaid {
		return nil, fmt.Errorf("booking %s is %s: %w", booking.ID.String(), booking.Status, apperr.ErrConflict)
	}
	if booking.AmountPaid+payment.Amount > booking.TotalAmount {
		return nil, fmt.Errorf("payment of %.2f exceeds outstanding balance %.2f: %w",
			payment.Amount, booking.TotalAmount-booking.AmountPaid, apperr.ErrConflict)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO payments (id, booking_id, amount, payment_type, payment_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		payment.ID,
		payment.BookingID,
		payment.Amount,
		payment.PaymentType,
		payment.PaymentDate,
		payment.Status,
		payment.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, fmt.Errorf("insert payment for booking %s: %w", payment.BookingID.String(), err)
	}

	err = tx.QueryRow(ctx, `
		UPDATE bookings
		SET amount_paid = amount_paid + $2,
		    status = CASE WHEN amount_paid + $2 >= total_amount THEN 'paid' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING status, total_amount, amount_paid, updated_at
	`, payment.BookingID, payment.Amount).Scan(
		&booking.Status,
		&booking.TotalAmount,
		&booking.AmountPaid,
		&booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to apply payment to booking",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return nil, fmt.Errorf("apply payment to booking %s: %w", payment.BookingID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit payment transaction", zap.Error(err))
		return nil, fmt.Errorf("commit payment transaction: %w", err)
	}

	return &booking, nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_type, payment_date, status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at
	`

	return r.scanMany(ctx, query, bookingID)
}

func (r *paymentRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, amount, payment_type, payment_date, status, created_at
		FROM payments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	return r.scanMany(ctx, query, limit, offset)
}

func (r *paymentRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query payments", zap.Error(err))
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.PaymentType,
			&payment.PaymentDate,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payments rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payments`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count payments", zap.Error(err))
		return 0, fmt.Errorf("count payments: %w", err)
	}

	return count, nil
}
