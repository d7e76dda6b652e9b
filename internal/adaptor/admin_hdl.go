package adaptor

import (
	"encoding/json"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved", response)
}

// UpsertSetting handles PUT /api/admin/settings
func (h *AdminHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpsertSetting(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "save setting")
		return
	}

	utils.ResponseSuccess(w, "Setting saved", response)
}

// GetSetting handles GET /api/admin/settings/{name}
func (h *AdminHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		utils.ResponseBadRequest(w, "Setting name required", nil)
		return
	}

	response, err := h.service.GetSetting(r.Context(), name)
	if err != nil {
		handleServiceError(w, h.log, err, "get setting")
		return
	}

	utils.ResponseSuccess(w, "Setting retrieved", response)
}

// GetSettings handles GET /api/admin/settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetSettings(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list settings")
		return
	}

	utils.ResponseSuccess(w, "Settings retrieved", response)
}
