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

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.DashboardResponse, error)
	UpsertSetting(ctx context.Context, req *request.UpsertSettingRequest) (*response.AdminSettingResponse, error)
	GetSetting(ctx context.Context, name string) (*response.AdminSettingResponse, error)
	GetSettings(ctx context.Context) ([]response.AdminSettingResponse, error)
}

type adminService struct {
	repo *repository.Repository // grouping booking, package, category & setting repos
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*response.DashboardResponse, error) {
	totalBookings, err := s.repo.Booking.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	activePackages, err := s.repo.Package.CountActive(ctx)
	if err != nil {
		s.log.Error("Failed to count active packages", zap.Error(err))
		return nil, fmt.Errorf("count active packages: %w", err)
	}

	totalCategories, err := s.repo.Category.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("count categories: %w", err)
	}

	totalPackageTypes, err := s.repo.PackageType.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count package types", zap.Error(err))
		return nil, fmt.Errorf("count package types: %w", err)
	}

	return &response.DashboardResponse{
		TotalBookings:     totalBookings,
		ActivePackages:    activePackages,
		TotalCategories:   totalCategories,
		TotalPackageTypes: totalPackageTypes,
	}, nil
}

func (s *adminService) UpsertSetting(ctx context.Context, req *request.UpsertSettingRequest) (*response.AdminSettingResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upsert setting validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Write keyed by setting_name, existing values are overwritten
	now := time.Now()
	setting := &entity.AdminSetting{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		SettingName:  req.SettingName,
		SettingValue: req.SettingValue,
	}

	if err := s.repo.AdminSetting.Upsert(ctx, setting); err != nil {
		s.log.Error("Failed to upsert setting",
			zap.Error(err),
			zap.String("setting_name", req.SettingName),
		)
		return nil, fmt.Errorf("upsert setting: %w", err)
	}

	s.log.Info("Setting saved", zap.String("setting_name", setting.SettingName))

	resp := response.AdminSettingToResponse(setting)
	return &resp, nil
}

func (s *adminService) GetSetting(ctx context.Context, name string) (*response.AdminSettingResponse, error) {
	setting, err := s.repo.AdminSetting.FindByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to find setting", zap.Error(err), zap.String("setting_name", name))
		return nil, fmt.Errorf("find setting: %w", err)
	}
	if setting == nil {
		return nil, fmt.Errorf("setting %s: %w", name, apperr.ErrNotFound)
	}

	resp := response.AdminSettingToResponse(setting)
	return &resp, nil
}

func (s *adminService) GetSettings(ctx context.Context) ([]response.AdminSettingResponse, error) {
	settings, err := s.repo.AdminSetting.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list settings", zap.Error(err))
		return nil, fmt.Errorf("list settings: %w", err)
	}

	responses := make([]response.AdminSettingResponse, len(settings))
	for i, setting := range settings {
		responses[i] = response.AdminSettingToResponse(setting)
	}

	return responses, nil
}
