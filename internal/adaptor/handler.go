package adaptor

import (
	"errors"
	"net/http"

	"lab-booking/internal/booking"
	"lab-booking/internal/checkout"
	"lab-booking/internal/dto/response"
	"lab-booking/internal/session"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Cart:     NewCartHandler(service.Cart, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
	}
}

// workflowFrom returns the session's workflow set by middleware.CartSession.
func workflowFrom(w http.ResponseWriter, r *http.Request, log *zap.Logger) (*checkout.Workflow, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		log.Error("Cart session missing from request context", zap.String("path", r.URL.Path))
		utils.ResponseInternalError(w, "Internal server error")
		return nil, false
	}
	return sess.Checkout, true
}

// handleServiceError maps service errors to responses. data is the current
// view (cart or checkout state) when the caller has one.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, data any) {
	var (
		reqErr   *usecase.ValidationError
		draftErr *checkout.ValidationError
	)

	switch {
	case errors.As(err, &reqErr):
		log.Warn(operation+" validation failed", zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", reqErr.Errors)

	case errors.As(err, &draftErr):
		log.Debug(operation+" blocked by invalid booking details",
			zap.String("operation", operation),
			zap.Int("error_count", len(draftErr.Errors)))
		utils.ResponseUnprocessable(w, "Please fix the errors in the form before booking", data, draftErr.Errors)

	case errors.Is(err, usecase.ErrPackageNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err), zap.String("operation", operation))
		utils.ResponseNotFound(w, "Package not found")

	case errors.Is(err, usecase.ErrPackageInactive):
		log.Warn(operation+" failed - inactive package", zap.Error(err), zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Package is not available for booking", nil)

	case errors.Is(err, usecase.ErrPackageExists):
		utils.ResponseConflict(w, "Package already exists", nil)

	case errors.Is(err, booking.ErrUnknownField):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, checkout.ErrSubmitting):
		utils.ResponseConflict(w, "A booking is being submitted, please wait", data)

	case errors.Is(err, checkout.ErrInvalidStep):
		utils.ResponseConflict(w, "Action not allowed at this step", data)

	case errors.Is(err, checkout.ErrEmptyCart):
		utils.ResponseJSON(w, http.StatusBadRequest, false, "Your cart is empty", data, nil)

	case errors.Is(err, checkout.ErrSubmissionFailed):
		message := "We couldn't complete your booking. Please try again."
		if state, ok := data.(*response.CheckoutResponse); ok && state != nil && state.Notice != "" {
			message = state.Notice
		}
		utils.ResponseBadGateway(w, message, data)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
