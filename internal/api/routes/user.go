package routes

import (
	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers/user"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/users"
)

// RegisterUserRoutes registers account and profile endpoints
func RegisterUserRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	registerHandler := user.NewRegisterHandler(service, authMiddleware)
	loginHandler := user.NewLoginHandler(service, authMiddleware)
	profileHandler := user.NewProfileHandler(service)

	// Public endpoints
	r.Post("/api/auth/register", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Get("/api/users/me", profileHandler.HandleMe)
		r.Get("/api/users/search", profileHandler.HandleSearch)
		r.Get("/api/users/{userID}", profileHandler.HandleGet)
		r.Put("/api/users/{userID}", profileHandler.HandleUpdate)
	})
}
