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

type CatalogService interface {
	// Categories
	CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error)
	GetCategories(ctx context.Context) ([]response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error

	// Package types
	CreatePackageType(ctx context.Context, req *request.CreatePackageTypeRequest) (*response.PackageTypeResponse, error)
	GetPackageTypes(ctx context.Context) ([]response.PackageTypeResponse, error)
	DeletePackageType(ctx context.Context, packageTypeID uuid.UUID) error

	// Packages
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	GetPackages(ctx context.Context) ([]response.PackageResponse, error)
	GetPackagesByCategory(ctx context.Context, categoryID uuid.UUID) ([]response.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID uuid.UUID) error
}

type catalogService struct {
	repo *repository.Repository // grouping category, package type & package repos
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ==================== CATEGORIES ====================

func (s *catalogService) CreateCategory(ctx context.Context, req *request.CreateCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Name must be unique
	existing, err := s.repo.Category.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check category name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check category name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: category %s already exists", apperr.ErrConflict, req.Name)
	}

	// 3. Create
	now := time.Now()
	category := &entity.Category{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
	)

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *catalogService) GetCategories(ctx context.Context) ([]response.CategoryResponse, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	responses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = response.CategoryToResponse(category)
	}

	return responses, nil
}

func (s *catalogService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	// The repository rejects the delete when packages still reference the category
	if err := s.repo.Category.Delete(ctx, categoryID); err != nil {
		s.log.Warn("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

// ==================== PACKAGE TYPES ====================

func (s *catalogService) CreatePackageType(ctx context.Context, req *request.CreatePackageTypeRequest) (*response.PackageTypeResponse, error) {
	// 1. Validate (duration must be at least one month)
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package type validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Name must be unique
	existing, err := s.repo.PackageType.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check package type name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("check package type name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: package type %s already exists", apperr.ErrConflict, req.Name)
	}

	// 3. Create
	now := time.Now()
	packageType := &entity.PackageType{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:             req.Name,
		DurationInMonths: req.DurationInMonths,
	}

	if err := s.repo.PackageType.Create(ctx, packageType); err != nil {
		s.log.Error("Failed to create package type", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create package type: %w", err)
	}

	s.log.Info("Package type created",
		zap.String("package_type_id", packageType.ID.String()),
		zap.String("name", packageType.Name),
		zap.Int("duration_in_months", packageType.DurationInMonths),
	)

	resp := response.PackageTypeToResponse(packageType)
	return &resp, nil
}

func (s *catalogService) GetPackageTypes(ctx context.Context) ([]response.PackageTypeResponse, error) {
	packageTypes, err := s.repo.PackageType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list package types", zap.Error(err))
		return nil, fmt.Errorf("list package types: %w", err)
	}

	responses := make([]response.PackageTypeResponse, len(packageTypes))
	for i, packageType := range packageTypes {
		responses[i] = response.PackageTypeToResponse(packageType)
	}

	return responses, nil
}

func (s *catalogService) DeletePackageType(ctx context.Context, packageTypeID uuid.UUID) error {
	if err := s.repo.PackageType.Delete(ctx, packageTypeID); err != nil {
		s.log.Warn("Failed to delete package type",
			zap.Error(err),
			zap.String("package_type_id", packageTypeID.String()),
		)
		return fmt.Errorf("delete package type: %w", err)
	}

	return nil
}

// ==================== PACKAGES ====================

func (s *catalogService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", apperr.ErrValidation, utils.FormatValidationErrors(errs))
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid category ID format", apperr.ErrValidation)
	}
	packageTypeID, err := uuid.Parse(req.PackageTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package type ID format", apperr.ErrValidation)
	}

	// 2. Both references must exist
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", req.CategoryID, apperr.ErrNotFound)
	}

	packageType, err := s.repo.PackageType.FindByID(ctx, packageTypeID)
	if err != nil {
		s.log.Error("Failed to find package type", zap.Error(err), zap.String("package_type_id", req.PackageTypeID))
		return nil, fmt.Errorf("find package type: %w", err)
	}
	if packageType == nil {
		return nil, fmt.Errorf("package type %s: %w", req.PackageTypeID, apperr.ErrNotFound)
	}

	// 3. Create, active by default
	now := time.Now()
	pkg := &entity.Package{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    categoryID,
		PackageTypeID: packageTypeID,
		IsActive:      true,
	}

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		s.log.Error("Failed to create package", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID.String()),
		zap.String("name", pkg.Name),
		zap.Float64("price", pkg.Price),
	)

	resp := response.PackageToResponse(pkg, category.Name, packageType.Name)
	return &resp, nil
}

func (s *catalogService) GetPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.Package.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return s.toPackageResponses(ctx, packages)
}

func (s *catalogService) GetPackagesByCategory(ctx context.Context, categoryID uuid.UUID) ([]response.PackageResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", categoryID.String()))
		return nil, fmt.Errorf("find category: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID.String(), apperr.ErrNotFound)
	}

	packages, err := s.repo.Package.FindByCategoryID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to list packages by category",
			zap.Error(err),
			zap.String("category_id", categoryID.String()),
		)
		return nil, fmt.Errorf("list packages by category: %w", err)
	}

	return s.toPackageResponses(ctx, packages)
}

func (s *catalogService) DeletePackage(ctx context.Context, packageID uuid.UUID) error {
	if err := s.repo.Package.Delete(ctx, packageID); err != nil {
		s.log.Warn("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", packageID.String()),
		)
		return fmt.Errorf("delete package: %w", err)
	}

	return nil
}

// ==================== HELPER METHODS ====================

// toPackageResponses resolves category and type names once per distinct ID
func (s *catalogService) toPackageResponses(ctx context.Context, packages []*entity.Package) ([]response.PackageResponse, error) {
	categoryNames := make(map[uuid.UUID]string)
	typeNames := make(map[uuid.UUID]string)

	responses := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		categoryName, ok := categoryNames[pkg.CategoryID]
		if !ok {
			if category, _ := s.repo.Category.FindByID(ctx, pkg.CategoryID); category != nil {
				categoryName = category.Name
			}
			categoryNames[pkg.CategoryID] = categoryName
		}

		typeName, ok := typeNames[pkg.PackageTypeID]
		if !ok {
			if packageType, _ := s.repo.PackageType.FindByID(ctx, pkg.PackageTypeID); packageType != nil {
				typeName = packageType.Name
			}
			typeNames[pkg.PackageTypeID] = typeName
		}

		responses[i] = response.PackageToResponse(pkg, categoryName, typeName)
	}

	return responses, nil
}
