package repository

import (
	"gym-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	Session      SessionRepository
	Category     CategoryRepository
	PackageType  PackageTypeRepository
	Package      PackageRepository
	Booking      BookingRepository
	Payment      PaymentRepository
	AdminSetting AdminSettingRepository
	Inquiry      InquiryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		Session:      NewSessionRepository(db, log),
		Category:     NewCategoryRepository(db, log),
		PackageType:  NewPackageTypeRepository(db, log),
		Package:      NewPackageRepository(db, log),
		Booking:      NewBookingRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		AdminSetting: NewAdminSettingRepository(db, log),
		Inquiry:      NewInquiryRepository(db, log),
	}
}
