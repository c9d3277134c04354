package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/posts"
)

type updateRequest struct {
	AttachmentPath *string `json:"attachmentPath"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	IsPublished    bool    `json:"isPublished"`
}

// HandleUpdate overwrites a draft, optionally publishing it
// PUT /api/posts/{postID}
func (h *PostHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	err := h.service.UpdatePost(r.Context(), middleware.GetActor(r), postID, posts.UpdatePostRequest{
		Title:          req.Title,
		Content:        req.Content,
		Publish:        req.IsPublished,
		AttachmentPath: req.AttachmentPath,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post updated successfully"})
}

// HandleDelete removes a post and everything hanging off it
// DELETE /api/posts/{postID}
func (h *PostHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post ID is required")
		return
	}

	if err := h.service.DeletePost(r.Context(), middleware.GetActor(r), postID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}
