package comments

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

type commentService struct {
	commentRepo Repository
	postRepo    PostGetter
	logger      *slog.Logger
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo Repository, postRepo PostGetter, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

// CreateComment adds a comment to a post the actor can view
func (s *commentService) CreateComment(ctx context.Context, actor *users.Actor, postID, content string) (*Comment, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentEmpty
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !posts.CanView(actor, post) {
		return nil, posts.ErrForbidden
	}

	comment := &Comment{
		ID:       uuid.NewString(),
		AuthorID: actor.ID,
		PostID:   postID,
		Content:  content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment", comment.ID,
		"post", postID,
		"author", actor.ID)

	return comment, nil
}

// UpdateComment replaces a comment's content; only the author may update
func (s *commentService) UpdateComment(ctx context.Context, actor *users.Actor, commentID, content string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return ErrContentEmpty
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	// Admins moderate by deletion, not by rewriting other people's words
	if comment.AuthorID != actor.ID {
		return ErrNotAuthorized
	}

	return s.commentRepo.Update(ctx, commentID, content)
}

// DeleteComment removes a comment; the author or an admin may delete
func (s *commentService) DeleteComment(ctx context.Context, actor *users.Actor, commentID string) error {
	if actor == nil {
		return ErrNotAuthorized
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	if !canDelete(actor, comment) {
		return ErrNotAuthorized
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info("comment deleted",
		"comment", commentID,
		"actor", actor.ID,
		"admin", actor.IsAdmin && actor.ID != comment.AuthorID)

	return nil
}

// ListForPost returns the post's comments, oldest first, for an actor who can
// view the post
func (s *commentService) ListForPost(ctx context.Context, actor *users.Actor, postID string) ([]*CommentView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !posts.CanView(actor, post) {
		return nil, posts.ErrForbidden
	}

	views, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		v.CanDelete = canDelete(actor, &v.Comment)
	}
	return views, nil
}

// canDelete is the comment half of the deletion rule: owner or admin
func canDelete(actor *users.Actor, comment *Comment) bool {
	if actor == nil {
		return false
	}
	return actor.ID == comment.AuthorID || actor.IsAdmin
}
