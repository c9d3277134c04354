package comments

import (
	"context"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

// Service defines the business logic interface for comments
type Service interface {
	// CreateComment adds a comment to a post the actor can view.
	// Commenting on a draft hidden from the actor is rejected with the same
	// error the actor would get reading it.
	CreateComment(ctx context.Context, actor *users.Actor, postID, content string) (*Comment, error)

	// UpdateComment replaces a comment's content; author only
	UpdateComment(ctx context.Context, actor *users.Actor, commentID, content string) error

	// DeleteComment removes a comment; author or admin
	DeleteComment(ctx context.Context, actor *users.Actor, commentID string) error

	// ListForPost returns the post's comments oldest first, each carrying a
	// canDelete flag for the actor. Applies the post view rule, so comments
	// on hidden drafts are as invisible as the draft itself.
	ListForPost(ctx context.Context, actor *users.Actor, postID string) ([]*CommentView, error)
}

// Repository defines the data access interface for comments
type Repository interface {
	// Create inserts a comment row
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment by id
	GetByID(ctx context.Context, commentID string) (*Comment, error)

	// ListByPost retrieves a post's comments oldest first, with author
	// usernames joined in
	ListByPost(ctx context.Context, postID string) ([]*CommentView, error)

	// Update overwrites a comment's content
	Update(ctx context.Context, commentID, content string) error

	// Delete removes a comment row
	Delete(ctx context.Context, commentID string) error
}

// PostGetter is the slice of the post repository needed to apply the view
// rule before reading or writing comments
type PostGetter interface {
	GetByID(ctx context.Context, postID string) (*posts.Post, error)
}
