package likes

import (
	"context"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

// Service defines the like toggle coordinator. Both operations are idempotent
// from the caller's point of view: liking an already-liked post and unliking
// a never-liked post are no-op successes.
type Service interface {
	// Like records that the actor likes the post. Requires the actor to be
	// able to view the post. Returns ErrToggleInFlight if another toggle for
	// the same (actor, post) pair is still being processed.
	Like(ctx context.Context, actor *users.Actor, postID string) error

	// Unlike removes the actor's like from the post, if present. Same guard
	// and visibility rules as Like.
	Unlike(ctx context.Context, actor *users.Actor, postID string) error
}

// Repository defines the data access interface for likes. Both mutations are
// idempotent at the store: insert-if-absent and delete-if-present on the
// composite key.
type Repository interface {
	// Create inserts a like row unless one already exists for the pair
	Create(ctx context.Context, userID, postID string) error

	// Delete removes the like row for the pair if present
	Delete(ctx context.Context, userID, postID string) error
}

// PostGetter is the slice of the post repository the coordinator needs to
// apply the view rule before toggling
type PostGetter interface {
	GetByID(ctx context.Context, postID string) (*posts.Post, error)
}
