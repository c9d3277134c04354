package routes

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers/auth"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/users"
)

// RegisterUserRoutes registers registration, login, logout, and the
// current-actor probe
func RegisterUserRoutes(r chi.Router, userService users.Service, sessions *middleware.SessionAuth) {
	handler := auth.NewAuthHandler(userService, sessions)

	r.Post("/api/users/register", handler.HandleRegister)
	r.Post("/api/users/login", handler.HandleLogin)
	r.Post("/api/users/logout", handler.HandleLogout)
	r.Get("/api/users/me", handler.HandleMe)
}
