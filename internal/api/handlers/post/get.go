package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
)

// HandleGet returns one post enriched for the actor
// GET /api/posts/{postID}
func (h *PostHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	view, err := h.service.GetByID(r.Context(), middleware.GetActor(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, view)
}

// HandleListPublished returns all published posts, newest first
// GET /api/posts
func (h *PostHandler) HandleListPublished(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListPublished(r.Context(), middleware.GetActor(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}

// HandleListMine returns the actor's own posts in every state
// GET /api/posts/my
func (h *PostHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.ListOwnedBy(r.Context(), middleware.GetActor(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
