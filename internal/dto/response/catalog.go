package response

import (
	"time"

	"gym-booking/internal/data/entity"
)

type CategoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type PackageTypeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	DurationInMonths int    `json:"duration_in_months"`
}

type PackageResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name,omitempty"`
	PackageTypeID   string    `json:"package_type_id"`
	PackageTypeName string    `json:"package_type_name,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Helper converters
func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
	}
}

func PackageTypeToResponse(packageType *entity.PackageType) PackageTypeResponse {
	return PackageTypeResponse{
		ID:               packageType.ID.String(),
		Name:             packageType.Name,
		DurationInMonths: packageType.DurationInMonths,
	}
}

func PackageToResponse(pkg *entity.Package, categoryName, packageTypeName string) PackageResponse {
	return PackageResponse{
		ID:              pkg.ID.String(),
		Name:            pkg.Name,
		Description:     pkg.Description,
		Price:           pkg.Price,
		CategoryID:      pkg.CategoryID.String(),
		CategoryName:    categoryName,
		PackageTypeID:   pkg.PackageTypeID.String(),
		PackageTypeName: packageTypeName,
		IsActive:        pkg.IsActive,
		CreatedAt:       pkg.CreatedAt,
	}
}
