package usecase

import (
	"context"
	"fmt"

	"lab-booking/internal/checkout"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

type CartService interface {
	GetCart(ctx context.Context, wf *checkout.Workflow) *response.CartResponse
	AddItem(ctx context.Context, wf *checkout.Workflow, req *request.AddCartItemRequest) (*response.CartResponse, error)
	// UpdateItem reports whether the quantity was applied; out-of-range
	// quantities and unknown ids leave the cart unchanged.
	UpdateItem(ctx context.Context, wf *checkout.Workflow, packageID string, req *request.UpdateCartItemRequest) (*response.CartResponse, bool, error)
	RemoveItem(ctx context.Context, wf *checkout.Workflow, packageID string) (*response.CartResponse, error)
	Clear(ctx context.Context, wf *checkout.Workflow) (*response.CartResponse, error)
}

type cartService struct {
	packages repository.PackageRepository
	log      *zap.Logger
}

func NewCartService(packages repository.PackageRepository, log *zap.Logger) CartService {
	return &cartService{
		packages: packages,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) view(wf *checkout.Workflow) *response.CartResponse {
	resp := response.CartToResponse(wf.Snapshot().Cart)
	return &resp
}

func (s *cartService) GetCart(ctx context.Context, wf *checkout.Workflow) *response.CartResponse {
	return s.view(wf)
}

func (s *cartService) AddItem(ctx context.Context, wf *checkout.Workflow, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	pkg, err := s.packages.FindByID(ctx, req.PackageID)
	if err != nil {
		return nil, fmt.Errorf("find package %s: %w", req.PackageID, err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, req.PackageID)
	}
	if !pkg.IsActive {
		return nil, fmt.Errorf("%w: %s", ErrPackageInactive, req.PackageID)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := wf.AddToCart(*pkg, quantity); err != nil {
		return nil, err
	}

	s.log.Debug("Package added to cart",
		zap.String("package_id", pkg.ID),
		zap.Int("requested", quantity),
		zap.Int("quantity", wf.QuantityOf(pkg.ID)),
	)
	return s.view(wf), nil
}

func (s *cartService) UpdateItem(ctx context.Context, wf *checkout.Workflow, packageID string, req *request.UpdateCartItemRequest) (*response.CartResponse, bool, error) {
	applied, err := wf.UpdateQuantity(packageID, req.Quantity)
	if err != nil {
		return nil, false, err
	}
	if !applied {
		s.log.Debug("Cart quantity update ignored",
			zap.String("package_id", packageID),
			zap.Int("quantity", req.Quantity),
		)
	}
	return s.view(wf), applied, nil
}

func (s *cartService) RemoveItem(ctx context.Context, wf *checkout.Workflow, packageID string) (*response.CartResponse, error) {
	if err := wf.RemoveFromCart(packageID); err != nil {
		return nil, err
	}
	return s.view(wf), nil
}

func (s *cartService) Clear(ctx context.Context, wf *checkout.Workflow) (*response.CartResponse, error) {
	if err := wf.ClearCart(); err != nil {
		return nil, err
	}
	return s.view(wf), nil
}
