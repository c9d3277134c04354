package likes

import (
	"context"
	"log/slog"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

type likeService struct {
	likeRepo Repository
	postRepo PostGetter
	guard    *toggleGuard
	logger   *slog.Logger
}

// NewLikeService creates a new like toggle coordinator
func NewLikeService(likeRepo Repository, postRepo PostGetter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &likeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
		guard:    newToggleGuard(),
		logger:   logger,
	}
}

// Like records the actor's like on the post
func (s *likeService) Like(ctx context.Context, actor *users.Actor, postID string) error {
	return s.toggle(ctx, actor, postID, s.likeRepo.Create, "like")
}

// Unlike removes the actor's like from the post
func (s *likeService) Unlike(ctx context.Context, actor *users.Actor, postID string) error {
	return s.toggle(ctx, actor, postID, s.likeRepo.Delete, "unlike")
}

// toggle runs one store mutation for the pair under the single-flight guard.
// The guard key is released on every path once the store call returns.
func (s *likeService) toggle(ctx context.Context, actor *users.Actor, postID string,
	op func(ctx context.Context, userID, postID string) error, name string) error {

	if actor == nil {
		return ErrNotAuthorized
	}

	key := toggleKey(actor.ID, postID)
	if !s.guard.tryAcquire(key) {
		s.logger.Debug("toggle rejected, already in flight",
			"op", name,
			"user", actor.ID,
			"post", postID)
		return ErrToggleInFlight
	}
	defer s.guard.release(key)

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	// Likes follow the same visibility rule as reads: you cannot like a
	// draft you cannot see.
	if !posts.CanView(actor, post) {
		return posts.ErrForbidden
	}

	if err := op(ctx, actor.ID, postID); err != nil {
		return err
	}

	s.logger.Info("post "+name+"d", "user", actor.ID, "post", postID)
	return nil
}
