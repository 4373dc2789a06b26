package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lab-booking/internal/booking"
	"lab-booking/internal/data/entity"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	GetPackage(ctx context.Context, id string) (*response.PackageResponse, error)

	// Admin
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
}

type catalogService struct {
	repo repository.PackageRepository
	log  *zap.Logger
}

func NewCatalogService(repo repository.PackageRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.FindAllActive(ctx)
	if err != nil {
		s.log.Error("Failed to list packages", zap.Error(err))
		return nil, fmt.Errorf("list packages: %w", err)
	}

	out := make([]response.PackageResponse, len(packages))
	for i, pkg := range packages {
		out[i] = response.PackageToResponse(pkg)
	}

	s.log.Debug("Packages listed", zap.Int("count", len(out)))
	return out, nil
}

func (s *catalogService) GetPackage(ctx context.Context, id string) (*response.PackageResponse, error) {
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package %s: %w", id, err)
	}
	if pkg == nil || !pkg.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, id)
	}

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *catalogService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = map[string]string{}
	}
	for field, msg := range booking.ValidatePricing(req.Price, req.OriginalPrice, req.DiscountPercentage) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		s.log.Warn("Create package validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, &ValidationError{Errors: errs}
	}

	existing, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("check package %s: %w", req.ID, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageExists, req.ID)
	}

	now := time.Now()
	pkg := &entity.Package{
		ID:                 strings.TrimSpace(req.ID),
		Name:               strings.TrimSpace(req.Name),
		TestCount:          req.TestCount,
		Price:              req.Price,
		OriginalPrice:      req.OriginalPrice,
		DiscountPercentage: req.DiscountPercentage,
		IsActive:           req.IsActive == nil || *req.IsActive,
		Timestamps: entity.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created",
		zap.String("package_id", pkg.ID),
		zap.String("price", pkg.Price.String()),
	)

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}
