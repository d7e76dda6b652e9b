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

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAll(ctx context.Context) ([]*entity.Package, error)
	FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Package, error)
	CountActive(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, description, price, category_id, package_type_id,
		                      is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Description,
		pkg.Price,
		pkg.CategoryID,
		pkg.PackageTypeID,
		pkg.IsActive,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)

	if err != nil {
		// category_id / package_type_id must reference existing rows
		if isForeignKeyViolation(err) {
			return fmt.Errorf("package %s references missing category or type: %w", pkg.Name, apperr.ErrNotFound)
		}
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `
		SELECT id, name, description, price, category_id, package_type_id,
		       is_active, created_at, updated_at
		FROM packages
		WHERE id = $1
	`

	var pkg entity.Package
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.Price,
		&pkg.CategoryID,
		&pkg.PackageTypeID,
		&pkg.IsActive,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindAll(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT id, name, description, price, category_id, package_type_id,
		       is_active, created_at, updated_at
		FROM packages
		ORDER BY name
	`

	return r.scanMany(ctx, query)
}

func (r *packageRepository) FindByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]*entity.Package, error) {
	query := `
		SELECT id, name, description, price, category_id, package_type_id,
		       is_active, created_at, updated_at
		FROM packages
		WHERE category_id = $1
		ORDER BY name
	`

	return r.scanMany(ctx, query, categoryID)
}

func (r *packageRepository) scanMany(ctx context.Context, query string, args ...any) ([]*entity.Package, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query packages", zap.Error(err))
		return nil, fmt.Errorf("query packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		var pkg entity.Package
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Description,
			&pkg.Price,
			&pkg.CategoryID,
			&pkg.PackageTypeID,
			&pkg.IsActive,
			&pkg.CreatedAt,
			&pkg.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate packages rows: %w", err)
	}

	return packages, nil
}

func (r *packageRepository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM packages WHERE is_active = true`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count active packages", zap.Error(err))
		return 0, fmt.Errorf("count active packages: %w", err)
	}

	return count, nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("package %s still has bookings: %w", id.String(), apperr.ErrConflict)
		}
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s: %w", id.String(), apperr.ErrNotFound)
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}
