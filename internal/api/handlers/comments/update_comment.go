package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
)

// HandleUpdate replaces a comment's content; author only
// PUT /api/comments/id/{commentID}
func (h *CommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentID")
	if commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment ID is required")
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.service.UpdateComment(r.Context(), middleware.GetActor(r), commentID, req.Content); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment updated successfully"})
}

// HandleDelete removes a comment; author or admin
// DELETE /api/comments/id/{commentID}
func (h *CommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "commentID")
	if commentID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment ID is required")
		return
	}

	if err := h.service.DeleteComment(r.Context(), middleware.GetActor(r), commentID); err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
}
