package wire

import (
	"shareit/internal/adaptor"
	"shareit/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireItem(r chi.Router, itemHandler *adaptor.ItemHandler, log *zap.Logger) {
	r.Route("/items", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/search", itemHandler.SearchItems)

		// ==================== IDENTIFIED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Identity(log))

			r.Post("/", itemHandler.CreateItem)
			r.Get("/", itemHandler.ListOwnerItems)
			r.Get("/{itemId}", itemHandler.GetItem)
			r.Patch("/{itemId}", itemHandler.UpdateItem)
			r.Post("/{itemId}/comment", itemHandler.AddComment)
		})
	})
}
