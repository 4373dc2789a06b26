package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/pkg/middleware"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/packages", catalogHandler.GetPackages)
	r.Get("/api/packages/{id}", catalogHandler.GetPackageByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/packages", func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.KeyHash, log))

		r.Post("/", catalogHandler.CreatePackage)
	})
}
