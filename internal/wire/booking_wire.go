package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== USER ROUTES ====================
	r.Route("/api/user/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.GetMyBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", bookingHandler.GetAllBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
	})

	r.Route("/api/admin/payments", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/", bookingHandler.ProcessPayment)
	})

	r.Route("/api/admin/reports", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/bookings", bookingHandler.GetReport)
	})
}
