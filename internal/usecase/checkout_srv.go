package usecase

import (
	"context"

	"lab-booking/internal/checkout"
	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CheckoutService interface {
	GetState(ctx context.Context, wf *checkout.Workflow) *response.CheckoutResponse
	ProceedToDetails(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error)
	BackToCart(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error)
	UpdateDraft(ctx context.Context, wf *checkout.Workflow, req request.DraftUpdateRequest) (*response.CheckoutResponse, error)
	Validate(ctx context.Context, wf *checkout.Workflow) *response.CheckoutResponse
	Submit(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error)
	Restart(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error)
}

type checkoutService struct {
	log *zap.Logger
}

func NewCheckoutService(log *zap.Logger) CheckoutService {
	return &checkoutService{
		log: log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) state(wf *checkout.Workflow) *response.CheckoutResponse {
	resp := response.CheckoutToResponse(wf.Snapshot())
	return &resp
}

func (s *checkoutService) GetState(ctx context.Context, wf *checkout.Workflow) *response.CheckoutResponse {
	return s.state(wf)
}

func (s *checkoutService) ProceedToDetails(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error) {
	if err := wf.ProceedToDetails(); err != nil {
		return s.state(wf), err
	}
	return s.state(wf), nil
}

func (s *checkoutService) BackToCart(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error) {
	if err := wf.BackToCart(); err != nil {
		return s.state(wf), err
	}
	return s.state(wf), nil
}

func (s *checkoutService) UpdateDraft(ctx context.Context, wf *checkout.Workflow, req request.DraftUpdateRequest) (*response.CheckoutResponse, error) {
	if _, err := wf.EditDraft(req); err != nil {
		return s.state(wf), err
	}
	return s.state(wf), nil
}

func (s *checkoutService) Validate(ctx context.Context, wf *checkout.Workflow) *response.CheckoutResponse {
	wf.Validate()
	return s.state(wf)
}

func (s *checkoutService) Submit(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error) {
	if _, err := wf.Submit(ctx); err != nil {
		s.log.Warn("Checkout submit did not complete", zap.Error(err))
		return s.state(wf), err
	}
	return s.state(wf), nil
}

func (s *checkoutService) Restart(ctx context.Context, wf *checkout.Workflow) (*response.CheckoutResponse, error) {
	if err := wf.Restart(); err != nil {
		return s.state(wf), err
	}
	return s.state(wf), nil
}
