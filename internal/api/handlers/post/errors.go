package post

import (
	"log"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses.
// Forbidden (exists but hidden) and NotFound stay distinct on purpose.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case err == posts.ErrForbidden:
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You are not authorized to view this post")
	case err == posts.ErrNotAuthorized:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You are not authorized to modify this post")
	case posts.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
