package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"go.uber.org/zap"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Inquiry, error)
	CountAll(ctx context.Context) (int64, error)
}

type inquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInquiryRepository(db database.PgxIface, log *zap.Logger) InquiryRepository {
	return &inquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "inquiry")),
	}
}

func (r *inquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Message,
		inquiry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create inquiry",
			zap.Error(err),
			zap.String("email", inquiry.Email),
		)
		return fmt.Errorf("create inquiry: %w", err)
	}

	return nil
}

func (r *inquiryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Inquiry, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM inquiries
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find inquiries", zap.Error(err))
		return nil, fmt.Errorf("find inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*entity.Inquiry
	for rows.Next() {
		var inquiry entity.Inquiry
		err := rows.Scan(
			&inquiry.ID,
			&inquiry.Name,
			&inquiry.Email,
			&inquiry.Message,
			&inquiry.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan inquiry row", zap.Error(err))
			return nil, fmt.Errorf("scan inquiry row: %w", err)
		}
		inquiries = append(inquiries, &inquiry)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate inquiries rows: %w", err)
	}

	return inquiries, nil
}

func (r *inquiryRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM inquiries`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count inquiries", zap.Error(err))
		return 0, fmt.Errorf("count inquiries: %w", err)
	}

	return count, nil
}
