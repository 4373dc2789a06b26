package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/session"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCheckout(
	r chi.Router,
	checkoutHandler *adaptor.CheckoutHandler,
	sessions *session.Store,
	log *zap.Logger,
) {
	r.Route("/api/checkout", func(r chi.Router) {
		r.Use(middleware.CartSession(sessions, log))

		r.Get("/", checkoutHandler.GetCheckout)

		// step transitions
		r.Post("/details", checkoutHandler.ProceedToDetails)
		r.Post("/back", checkoutHandler.BackToCart)
		r.Post("/restart", checkoutHandler.Restart)

		r.Patch("/draft", checkoutHandler.UpdateDraft)
		r.Post("/validate", checkoutHandler.Validate)
		r.Post("/submit", checkoutHandler.Submit)
	})
}
