package like

import (
	"log"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/core/likes"
	"inkwell/internal/core/posts"
)

// handleServiceError converts like service errors to HTTP responses.
// A toggle already in flight maps to 409: the caller may retry shortly.
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case likes.ErrToggleInFlight:
		handlers.WriteError(w, http.StatusConflict, "ToggleInFlight", "A like toggle for this post is already being processed")
	case likes.ErrNotAuthorized:
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrForbidden:
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You are not authorized to view this post")
	default:
		log.Printf("Like handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
