package wire

import (
	"lab-booking/internal/adaptor"
	"lab-booking/internal/session"
	"lab-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	sessions *session.Store,
	log *zap.Logger,
) {
	// every cart route works on the caller's X-Cart-Session
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(middleware.CartSession(sessions, log))

		r.Get("/", cartHandler.GetCart)
		r.Delete("/", cartHandler.ClearCart)

		r.Post("/items", cartHandler.AddItem)
		r.Put("/items/{packageId}", cartHandler.UpdateItem)
		r.Delete("/items/{packageId}", cartHandler.RemoveItem)
	})
}
