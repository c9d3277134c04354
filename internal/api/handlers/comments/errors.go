package comments

import (
	"log"
	"net/http"

	"inkwell/internal/api/handlers"
	commentscore "inkwell/internal/core/comments"
	"inkwell/internal/core/posts"
)

// handleServiceError converts comment service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case commentscore.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case commentscore.ErrContentEmpty:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment content is required")
	case commentscore.ErrNotAuthorized:
		handlers.WriteError(w, http.StatusForbidden, "NotAuthorized", "You are not authorized to modify this comment")
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrForbidden:
		handlers.WriteError(w, http.StatusForbidden, "Forbidden", "You are not authorized to view this post")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
