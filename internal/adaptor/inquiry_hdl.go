package adaptor

import (
	"encoding/json"
	"net/http"

	"gym-booking/internal/dto/request"
	"gym-booking/internal/usecase"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type InquiryHandler struct {
	service usecase.InquiryService
	log     *zap.Logger
}

func NewInquiryHandler(service usecase.InquiryService, log *zap.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		log:     log,
	}
}

// CreateInquiry handles POST /api/inquiries
func (h *InquiryHandler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateInquiry(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create inquiry")
		return
	}

	utils.ResponseCreated(w, "Inquiry submitted", response)
}

// GetInquiries handles GET /api/admin/inquiries
func (h *InquiryHandler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r)

	response, err := h.service.GetInquiries(r.Context(), &page)
	if err != nil {
		handleServiceError(w, h.log, err, "list inquiries")
		return
	}

	utils.ResponseSuccess(w, "Inquiries retrieved", response)
}
