package wire

import (
	"shareit/internal/adaptor"
	"shareit/internal/data/repository"
	"shareit/internal/events"
	"shareit/internal/usecase"
	"shareit/pkg/middleware"
	"shareit/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router
func Wiring(repo *repository.Repository, publisher events.Publisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, config, logger)
	handler := adaptor.NewHandler(service, repo, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics())

	// System endpoints stay outside the rate limiter
	r.Get("/health", handler.System.Health)
	r.Method("GET", "/metrics", handler.System.Metrics())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit.RPS, config.RateLimit.Burst, logger))

		wireUser(r, handler.User)
		wireItem(r, handler.Item, logger)
		wireBooking(r, handler.Booking, logger)
		wireItemRequest(r, handler.ItemRequest, logger)
	})

	return r
}
