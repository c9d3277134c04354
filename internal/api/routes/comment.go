package routes

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers/comments"
	"inkwell/internal/api/middleware"
	commentscore "inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers the comment endpoints. Listing is open to
// anonymous actors; the service hides comments on drafts they cannot view.
func RegisterCommentRoutes(r chi.Router, service commentscore.Service, sessions *middleware.SessionAuth) {
	handler := comments.NewCommentHandler(service)

	r.Get("/api/comments/{postID}", handler.HandleList)

	r.With(sessions.RequireAuth).Post("/api/comments/{postID}", handler.HandleCreate)
	r.With(sessions.RequireAuth).Put("/api/comments/id/{commentID}", handler.HandleUpdate)
	r.With(sessions.RequireAuth).Delete("/api/comments/id/{commentID}", handler.HandleDelete)
}
