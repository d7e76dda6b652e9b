package adaptor

import (
	"gym-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Booking *BookingHandler
	Catalog *CatalogHandler
	Admin   *AdminHandler
	Inquiry *InquiryHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Booking: NewBookingHandler(service.Booking, log),
		Catalog: NewCatalogHandler(service.Catalog, log),
		Admin:   NewAdminHandler(service.Admin, log),
		Inquiry: NewInquiryHandler(service.Inquiry, log),
	}
}
