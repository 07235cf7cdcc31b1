package wire

import (
	"shareit/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser registers the user store routes. They do not read the identity header.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{userId}", userHandler.GetUser)
		r.Patch("/{userId}", userHandler.UpdateUser)
		r.Delete("/{userId}", userHandler.DeleteUser)
	})
}
