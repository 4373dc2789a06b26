package adaptor

import (
	"encoding/json"
	"net/http"

	"lab-booking/internal/dto/request"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// GetPackages handles GET /api/packages
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list packages", nil)
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackageByID handles GET /api/packages/{id}
func (h *CatalogHandler) GetPackageByID(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")
	if packageID == "" {
		utils.ResponseBadRequest(w, "Package ID is required", nil)
		return
	}

	pkg, err := h.service.GetPackage(r.Context(), packageID)
	if err != nil {
		handleServiceError(w, h.log, err, "get package", nil)
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// CreatePackage handles POST /api/admin/packages
func (h *CatalogHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package", nil)
		return
	}

	utils.ResponseCreated(w, "success", pkg)
}
