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

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "success", h.service.GetCart(r.Context(), wf))
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, err := h.service.AddItem(r.Context(), wf, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add to cart", h.service.GetCart(r.Context(), wf))
		return
	}

	utils.ResponseSuccess(w, "Added to cart", cart)
}

// UpdateItem handles PUT /api/cart/items/{packageId}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	packageID := chi.URLParam(r, "packageId")
	var req request.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cart, applied, err := h.service.UpdateItem(r.Context(), wf, packageID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cart item", h.service.GetCart(r.Context(), wf))
		return
	}

	message := "Quantity updated"
	if !applied {
		message = "Quantity unchanged"
	}
	utils.ResponseSuccess(w, message, cart)
}

// RemoveItem handles DELETE /api/cart/items/{packageId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), wf, chi.URLParam(r, "packageId"))
	if err != nil {
		handleServiceError(w, h.log, err, "remove cart item", h.service.GetCart(r.Context(), wf))
		return
	}

	utils.ResponseSuccess(w, "Removed from cart", cart)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	wf, ok := workflowFrom(w, r, h.log)
	if !ok {
		return
	}

	cart, err := h.service.Clear(r.Context(), wf)
	if err != nil {
		handleServiceError(w, h.log, err, "clear cart", h.service.GetCart(r.Context(), wf))
		return
	}

	utils.ResponseSuccess(w, "Cart cleared", cart)
}
