package like

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/likes"
)

// LikeHandler handles the like toggle endpoints
type LikeHandler struct {
	service likes.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service likes.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleLike records the actor's like on a post
// POST /api/likes/{postID}
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	if err := h.service.Like(r.Context(), middleware.GetActor(r), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Post liked successfully"})
}

// HandleUnlike removes the actor's like from a post
// DELETE /api/likes/{postID}
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	if err := h.service.Unlike(r.Context(), middleware.GetActor(r), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post unliked successfully"})
}
