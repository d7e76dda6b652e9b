package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminSettingRepository interface {
	Upsert(ctx context.Context, setting *entity.AdminSetting) error
	FindByName(ctx context.Context, name string) (*entity.AdminSetting, error)
	FindAll(ctx context.Context) ([]*entity.AdminSetting, error)
}

type adminSettingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminSettingRepository(db database.PgxIface, log *zap.Logger) AdminSettingRepository {
	return &adminSettingRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin_setting")),
	}
}

// Upsert creates or overwrites the setting keyed by setting_name
func (r *adminSettingRepository) Upsert(ctx context.Context, setting *entity.AdminSetting) error {
	query := `
		INSERT INTO admin_settings (id, setting_name, setting_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (setting_name)
		DO UPDATE SET setting_value = EXCLUDED.setting_value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		setting.ID,
		setting.SettingName,
		setting.SettingValue,
		setting.CreatedAt,
		setting.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert admin setting",
			zap.Error(err),
			zap.String("setting_name", setting.SettingName),
		)
		return fmt.Errorf("upsert admin setting %s: %w", setting.SettingName, err)
	}

	return nil
}

func (r *adminSettingRepository) FindByName(ctx context.Context, name string) (*entity.AdminSetting, error) {
	query := `
		SELECT id, setting_name, setting_value, created_at, updated_at
		FROM admin_settings
		WHERE setting_name = $1
	`

	var setting entity.AdminSetting
	err := r.db.QueryRow(ctx, query, name).Scan(
		&setting.ID,
		&setting.SettingName,
		&setting.SettingValue,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find admin setting",
			zap.Error(err),
			zap.String("setting_name", name),
		)
		return nil, fmt.Errorf("find admin setting %s: %w", name, err)
	}

	return &setting, nil
}

func (r *adminSettingRepository) FindAll(ctx context.Context) ([]*entity.AdminSetting, error) {
	query := `
		SELECT id, setting_name, setting_value, created_at, updated_at
		FROM admin_settings
		ORDER BY setting_name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all admin settings", zap.Error(err))
		return nil, fmt.Errorf("find all admin settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.AdminSetting
	for rows.Next() {
		var setting entity.AdminSetting
		err := rows.Scan(
			&setting.ID,
			&setting.SettingName,
			&setting.SettingValue,
			&setting.CreatedAt,
			&setting.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan admin setting row", zap.Error(err))
			return nil, fmt.Errorf("scan admin setting row: %w", err)
		}
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate admin settings rows: %w", err)
	}

	return settings, nil
}
