package wire

import (
	"net/http"

	"pulau-harapan/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, authHandler *adaptor.AuthHandler, userHandler *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		// Public
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/roles", userHandler.Roles)

		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)

			r.Get("/", userHandler.GetAllUsers)
			r.Get("/stats", userHandler.Stats)
			r.Get("/{id}", userHandler.GetUser)
			r.Put("/{id}", userHandler.UpdateUser)
			r.Put("/{id}/role", userHandler.UpdateRole)
			r.Patch("/{id}/toggle-active", userHandler.ToggleActive)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})
}
