package routes

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers/like"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/likes"
)

// RegisterLikeRoutes registers the like toggle endpoints
func RegisterLikeRoutes(r chi.Router, service likes.Service, sessions *middleware.SessionAuth) {
	handler := like.NewLikeHandler(service)

	r.With(sessions.RequireAuth).Post("/api/likes/{postID}", handler.HandleLike)
	r.With(sessions.RequireAuth).Delete("/api/likes/{postID}", handler.HandleUnlike)
}
