package comments

import (
	commentscore "inkwell/internal/core/comments"
)

// CommentHandler handles the comment endpoints
type CommentHandler struct {
	service commentscore.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service commentscore.Service) *CommentHandler {
	return &CommentHandler{service: service}
}
