package wire

import (
	"gym-booking/internal/adaptor"
	"gym-booking/internal/data/repository"
	"gym-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the catalog needs no account
	r.Get("/api/categories", catalogHandler.GetCategories)
	r.Get("/api/categories/{id}/packages", catalogHandler.GetPackagesByCategory)
	r.Get("/api/package-types", catalogHandler.GetPackageTypes)
	r.Get("/api/packages", catalogHandler.GetPackages)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/categories", catalogHandler.CreateCategory)
		r.Delete("/categories/{id}", catalogHandler.DeleteCategory)

		r.Post("/package-types", catalogHandler.CreatePackageType)
		r.Delete("/package-types/{id}", catalogHandler.DeletePackageType)

		r.Post("/packages", catalogHandler.CreatePackage)
		r.Delete("/packages/{id}", catalogHandler.DeletePackage)
	})
}
