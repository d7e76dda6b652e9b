package usecase

import (
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Booking BookingService
	Catalog CatalogService
	Admin   AdminService
	Inquiry InquiryService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Booking: NewBookingService(repo, log),
		Catalog: NewCatalogService(repo, log),
		Admin:   NewAdminService(repo, log),
		Inquiry: NewInquiryService(repo.Inquiry, log),
	}
}
