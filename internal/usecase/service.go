package usecase

import (
	"lab-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog  CatalogService
	Cart     CartService
	Checkout CheckoutService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Catalog:  NewCatalogService(repo.Package, log),
		Cart:     NewCartService(repo.Package, log),
		Checkout: NewCheckoutService(log),
	}
}
