package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	inquiryHandler *adaptor.InquiryHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Contact form
	r.Post("/api/inquiries", inquiryHandler.CreateInquiry)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/dashboard", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", adminHandler.GetDashboard)
	})

	r.Route("/api/admin/settings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", adminHandler.GetSettings)
		r.Put("/", adminHandler.UpsertSetting)
		r.Get("/{name}", adminHandler.GetSetting)
	})

	r.Route("/api/admin/inquiries", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", inquiryHandler.GetInquiries)
	})
}
