package adaptor

import (
	"encoding/json"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// ==================== CATEGORIES ====================

// CreateCategory handles POST /api/admin/categories
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created", response)
}

// GetCategories handles GET /api/categories
func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetCategories(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", response)
}

// DeleteCategory handles DELETE /api/admin/categories/{id}
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		handleServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted", nil)
}

// ==================== PACKAGE TYPES ====================

// CreatePackageType handles POST /api/admin/package-types
func (h *CatalogHandler) CreatePackageType(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreatePackageType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package type")
		return
	}

	utils.ResponseCreated(w, "Package type created", response)
}

// GetPackageTypes handles GET /api/package-types
func (h *CatalogHandler) GetPackageTypes(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetPackageTypes(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list package types")
		return
	}

	utils.ResponseSuccess(w, "Package types retrieved", response)
}

// DeletePackageType handles DELETE /api/admin/package-types/{id}
func (h *CatalogHandler) DeletePackageType(w http.ResponseWriter, r *http.Request) {
	packageTypeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid package type ID", nil)
		return
	}

	if err := h.service.DeletePackageType(r.Context(), packageTypeID); err != nil {
		handleServiceError(w, h.log, err, "delete package type")
		return
	}

	utils.ResponseSuccess(w, "Package type deleted", nil)
}

// ==================== PACKAGES ====================

// CreatePackage handles POST /api/admin/packages
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created", response)
}

// GetPackages handles GET /api/packages
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved", response)
}

// GetPackagesByCategory handles GET /api/categories/{id}/packages
func (h *CatalogHandler) GetPackagesByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid category ID", nil)
		return
	}

	response, err := h.service.GetPackagesByCategory(r.Context(), categoryID)
	if err != nil {
		handleServiceError(w, h.log, err, "list packages by category")
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved", response)
}

// DeletePackage handles DELETE /api/admin/packages/{id}
func (h *CatalogHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	packageID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid package ID", nil)
		return
	}

	if err := h.service.DeletePackage(r.Context(), packageID); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}
