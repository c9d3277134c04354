package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
)

type commentRequest struct {
	Content string `json:"content"`
}

// HandleCreate adds a comment to a post the actor can view
// POST /api/comments/{postID}
func (h *CommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	comment, err := h.service.CreateComment(r.Context(), middleware.GetActor(r), postID, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, comment)
}

// HandleList returns a post's comments oldest first
// GET /api/comments/{postID}
func (h *CommentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	views, err := h.service.ListForPost(r.Context(), middleware.GetActor(r), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}
