package adaptor

import (
	"encoding/json"
	"net/http"

	"lab-booking/internal/dto/request"
	"lab-booking/internal/dto/response"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// run applies action and writes the resulting checkout state.
func (h *CheckoutHandler) run(w http.ResponseWriter, operation, message string, action func() (*response.CheckoutResponse, error)) {
	state, err := action()
	if err != nil {
		handleServiceError(w, h.log, err, operation, state)
		return
	}
	utils.ResponseSuccess(w, message, state)
}

// GetCheckout handles GET /api/checkout
func (h *CheckoutHandler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "success", h.service.GetState(r.Context(), wf))
}

// ProceedToDetails handles POST /api/checkout/details
func (h *CheckoutHandler) ProceedToDetails(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	h.run(w, "proceed to details", "Enter booking details", func() (*response.CheckoutResponse, error) {
		return h.service.ProceedToDetails(r.Context(), wf)
	})
}

// BackToCart handles POST /api/checkout/back
func (h *CheckoutHandler) BackToCart(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	h.run(w, "back to cart", "Review your cart", func() (*response.CheckoutResponse, error) {
		return h.service.BackToCart(r.Context(), wf)
	})
}

// UpdateDraft handles PATCH /api/checkout/draft
func (h *CheckoutHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	var req request.DraftUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req) == 0 {
		utils.ResponseBadRequest(w, "No fields to update", nil)
		return
	}

	h.run(w, "update booking details", "Booking details updated", func() (*response.CheckoutResponse, error) {
		return h.service.UpdateDraft(r.Context(), wf, req)
	})
}

// Validate handles POST /api/checkout/validate
func (h *CheckoutHandler) Validate(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	state := h.service.Validate(r.Context(), wf)
	if len(state.Errors) > 0 {
		utils.ResponseUnprocessable(w, "Please fix the errors in the form before booking", state, state.Errors)
		return
	}
	utils.ResponseSuccess(w, "Booking details are valid", state)
}

// Submit handles POST /api/checkout/submit
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	h.run(w, "submit booking", "Booking confirmed", func() (*response.CheckoutResponse, error) {
		return h.service.Submit(r.Context(), wf)
	})
}

// Restart handles POST /api/checkout/restart
func (h *CheckoutHandler) Restart(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	h.run(w, "restart checkout", "Start a new booking", func() (*response.CheckoutResponse, error) {
		return h.service.Restart(r.Context(), wf)
	})
}
