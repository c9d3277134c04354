package posts

import (
	"context"

	"inkwell/internal/core/users"
)

// Service defines the business logic interface for the post lifecycle.
// Every mutation re-validates authorization against the current row before
// writing, regardless of what the transport layer already checked.
type Service interface {
	// CreatePost creates a new post in draft or published state and returns it
	CreatePost(ctx context.Context, actor *users.Actor, req CreatePostRequest) (*Post, error)

	// UpdatePost overwrites a draft's title/content/attachment and may
	// transition it Draft -> Published. Fails for non-authors and for posts
	// that already left the draft state; there is no unpublish.
	UpdatePost(ctx context.Context, actor *users.Actor, postID string, req UpdatePostRequest) error

	// DeletePost removes a post and, by cascade, its likes and comments.
	// Allowed for the author and for admins, in any state.
	DeletePost(ctx context.Context, actor *users.Actor, postID string) error

	// GetByID returns the post enriched for the actor. Hidden drafts yield
	// ErrForbidden, unknown ids ErrPostNotFound.
	GetByID(ctx context.Context, actor *users.Actor, postID string) (*PostView, error)

	// ListPublished returns all published posts, newest first, enriched for
	// the actor (which may be nil for anonymous readers)
	ListPublished(ctx context.Context, actor *users.Actor) ([]*PostView, error)

	// ListOwnedBy returns every post authored by the actor regardless of
	// state, newest first, enriched for the actor
	ListOwnedBy(ctx context.Context, actor *users.Actor) ([]*PostView, error)
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post row
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a bare post row without engagement counts
	GetByID(ctx context.Context, postID string) (*Post, error)

	// GetView retrieves a post with like/comment counts and whether viewerID
	// has liked it, all computed in the same read. viewerID is empty for
	// anonymous readers.
	GetView(ctx context.Context, postID, viewerID string) (*PostView, error)

	// ListPublished retrieves all published posts, newest first, with counts
	ListPublished(ctx context.Context, viewerID string) ([]*PostView, error)

	// ListByAuthor retrieves all posts by an author in any state, newest
	// first, with counts
	ListByAuthor(ctx context.Context, authorID, viewerID string) ([]*PostView, error)

	// Update overwrites title, content, state, and attachment of a post
	Update(ctx context.Context, post *Post) error

	// Delete removes a post; dependent likes and comments go with it in the
	// same atomic statement via foreign key cascade
	Delete(ctx context.Context, postID string) error
}
