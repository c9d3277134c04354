package routes

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers/post"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/blobs"
	"inkwell/internal/core/posts"
)

// RegisterPostRoutes registers the post lifecycle endpoints.
// Reads are open to anonymous actors; visibility is decided per post.
func RegisterPostRoutes(r chi.Router, service posts.Service, blobService blobs.Service, sessions *middleware.SessionAuth) {
	handler := post.NewPostHandler(service, blobService)

	r.Get("/api/posts", handler.HandleListPublished)
	r.Get("/api/posts/{postID}", handler.HandleGet)

	r.With(sessions.RequireAuth).Get("/api/posts/my", handler.HandleListMine)
	r.With(sessions.RequireAuth).Post("/api/posts", handler.HandleCreate)
	r.With(sessions.RequireAuth).Put("/api/posts/{postID}", handler.HandleUpdate)
	r.With(sessions.RequireAuth).Delete("/api/posts/{postID}", handler.HandleDelete)
}
