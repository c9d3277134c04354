package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrContentEmpty indicates comment content is empty or whitespace
	ErrContentEmpty = errors.New("comment content is required")

	// ErrNotAuthorized indicates the actor may not modify this comment:
	// updates are author-only, deletes are author-or-admin
	ErrNotAuthorized = errors.New("not authorized to modify this comment")
)
