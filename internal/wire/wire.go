package wire

import (
	"net/http"

	"lab-booking/internal/adaptor"
	"lab-booking/internal/data/repository"
	"lab-booking/internal/session"
	"lab-booking/internal/usecase"
	"lab-booking/pkg/middleware"
	"lab-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes over the given dependencies.
func Wiring(repo *repository.Repository, sessions *session.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router: setupRouter(handler, sessions, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	sessions *session.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireCatalog(r, handler.Catalog, config, logger)
	wireCart(r, handler.Cart, sessions, logger)
	wireCheckout(r, handler.Checkout, sessions, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]int{"sessions": sessions.Len()})
	})

	return r
}
