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

type PackageTypeRepository interface {
	Create(ctx context.Context, packageType *entity.PackageType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PackageType, error)
	FindByName(ctx context.Context, name string) (*entity.PackageType, error)
	FindAll(ctx context.Context) ([]*entity.PackageType, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageTypeRepository(db database.PgxIface, log *zap.Logger) PackageTypeRepository {
	return &packageTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "package_type")),
	}
}

func (r *packageTypeRepository) Create(ctx context.Context, packageType *entity.PackageType) error {
	query := `
		INSERT INTO package_types (id, name, duration_in_months, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		packageType.ID,
		packageType.Name,
		packageType.DurationInMonths,
		packageType.CreatedAt,
		packageType.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("package type %s already exists: %w", packageType.Name, apperr.ErrConflict)
		}
		r.log.Error("Failed to create package type",
			zap.Error(err),
			zap.String("name", packageType.Name),
		)
		return fmt.Errorf("create package type %s: %w", packageType.Name, err)
	}

	return nil
}

func (r *packageTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PackageType, error) {
	query := `
		SELECT id, name, duration_in_months, created_at, updated_at
		FROM package_types
		WHERE id = $1
	`

	var packageType entity.PackageType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&packageType.ID,
		&packageType.Name,
		&packageType.DurationInMonths,
		&packageType.CreatedAt,
		&packageType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package type by ID",
			zap.Error(err),
			zap.String("package_type_id", id.String()),
		)
		return nil, fmt.Errorf("find package type by ID %s: %w", id.String(), err)
	}

	return &packageType, nil
}

func (r *packageTypeRepository) FindByName(ctx context.Context, name string) (*entity.PackageType, error) {
	query := `
		SELECT id, name, duration_in_months, created_at, updated_at
		FROM package_types
		WHERE name = $1
	`

	var packageType entity.PackageType
	err := r.db.QueryRow(ctx, query, name).Scan(
		&packageType.ID,
		&packageType.Name,
		&packageType.DurationInMonths,
		&packageType.CreatedAt,
		&packageType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package type by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find package type by name %s: %w", name, err)
	}

	return &packageType, nil
}

func (r *packageTypeRepository) FindAll(ctx context.Context) ([]*entity.PackageType, error) {
	query := `
		SELECT id, name, duration_in_months, created_at, updated_at
		FROM package_types
		ORDER BY duration_in_months
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all package types", zap.Error(err))
		return nil, fmt.Errorf("find all package types: %w", err)
	}
	defer rows.Close()

	var packageTypes []*entity.PackageType
	for rows.Next() {
		var packageType entity.PackageType
		err := rows.Scan(
			&packageType.ID,
			&packageType.Name,
			&packageType.DurationInMonths,
			&packageType.CreatedAt,
			&packageType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan package type row", zap.Error(err))
			return nil, fmt.Errorf("scan package type row: %w", err)
		}
		packageTypes = append(packageTypes, &packageType)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate package types rows: %w", err)
	}

	return packageTypes, nil
}

func (r *packageTypeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM package_types`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count package types", zap.Error(err))
		return 0, fmt.Errorf("count package types: %w", err)
	}

	return count, nil
}

func (r *packageTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM package_types WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("package type %s still has packages: %w", id.String(), apperr.ErrConflict)
		}
		r.log.Error("Failed to delete package type",
			zap.Error(err),
			zap.String("package_type_id", id.String()),
		)
		return fmt.Errorf("delete package type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package type %s: %w", id.String(), apperr.ErrNotFound)
	}

	r.log.Info("Package type deleted", zap.String("package_type_id", id.String()))
	return nil
}
