package routes

import (
	"github.com/go-chi/chi/v5"

	"PickMe/internal/api/handlers/group"
	"PickMe/internal/api/middleware"
	"PickMe/internal/core/groups"
)

// RegisterGroupRoutes registers friend group endpoints
// Everything is owner-scoped and requires authentication.
func RegisterGroupRoutes(r chi.Router, service groups.Service, authMiddleware *middleware.AuthMiddleware) {
	groupHandler := group.NewHandler(service)
	membersHandler := group.NewMembersHandler(service)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/api/groups", groupHandler.HandleList)
		r.Post("/api/groups", groupHandler.HandleCreate)
		r.Get("/api/groups/{groupID}", groupHandler.HandleGet)
		r.Put("/api/groups/{groupID}", groupHandler.HandleUpdate)
		r.Delete("/api/groups/{groupID}", groupHandler.HandleDelete)

		r.Get("/api/groups/{groupID}/members", membersHandler.HandleList)
		r.Post("/api/groups/{groupID}/members", membersHandler.HandleAdd)
		r.Delete("/api/groups/{groupID}/members/{userID}", membersHandler.HandleRemove)
	})
}
