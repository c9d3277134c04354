package posts

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/core/users"
)

type postService struct {
	postRepo Repository
	logger   *slog.Logger
}

// NewPostService creates a new post lifecycle service
func NewPostService(postRepo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		postRepo: postRepo,
		logger:   logger,
	}
}

// CreatePost validates input and inserts a new post in the requested state
func (s *postService) CreatePost(ctx context.Context, actor *users.Actor, req CreatePostRequest) (*Post, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}
	if err := validateContent(req.Title, req.Content); err != nil {
		return nil, err
	}

	state := StateDraft
	if req.Publish {
		state = StatePublished
	}

	post := &Post{
		ID:             uuid.NewString(),
		AuthorID:       actor.ID,
		Title:          strings.TrimSpace(req.Title),
		Content:        req.Content,
		State:          state,
		AttachmentPath: req.AttachmentPath,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"post", post.ID,
		"author", actor.ID,
		"state", post.State.String())

	return post, nil
}

// UpdatePost overwrites a draft after re-checking authorization against the
// stored row. The handler is expected to have pre-checked, but the decision
// could be stale by the time we get here, so it is never trusted.
func (s *postService) UpdatePost(ctx context.Context, actor *users.Actor, postID string, req UpdatePostRequest) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanEdit(actor, post) {
		return ErrNotAuthorized
	}

	if err := validateContent(req.Title, req.Content); err != nil {
		return err
	}

	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.AttachmentPath = req.AttachmentPath
	if req.Publish {
		post.State = StatePublished
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return err
	}

	s.logger.Info("post updated",
		"post", post.ID,
		"author", actor.ID,
		"state", post.State.String())

	return nil
}

// DeletePost removes a post and its dependent likes and comments
func (s *postService) DeletePost(ctx context.Context, actor *users.Actor, postID string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !CanDelete(actor, post) {
		return ErrNotAuthorized
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		"post", postID,
		"actor", actor.ID,
		"admin", actor.IsAdmin && actor.ID != post.AuthorID)

	return nil
}

// GetByID returns the enriched post if the actor may view it
func (s *postService) GetByID(ctx context.Context, actor *users.Actor, postID string) (*PostView, error) {
	view, err := s.postRepo.GetView(ctx, postID, viewerID(actor))
	if err != nil {
		return nil, err
	}

	if !CanView(actor, &view.Post) {
		return nil, ErrForbidden
	}

	view.CanDelete = CanDelete(actor, &view.Post)
	return view, nil
}

// ListPublished returns all published posts enriched for the actor
func (s *postService) ListPublished(ctx context.Context, actor *users.Actor) ([]*PostView, error) {
	views, err := s.postRepo.ListPublished(ctx, viewerID(actor))
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		v.CanDelete = CanDelete(actor, &v.Post)
	}
	return views, nil
}

// ListOwnedBy returns every post the actor has authored, drafts included
func (s *postService) ListOwnedBy(ctx context.Context, actor *users.Actor) ([]*PostView, error) {
	if actor == nil {
		return nil, ErrNotAuthorized
	}

	views, err := s.postRepo.ListByAuthor(ctx, actor.ID, actor.ID)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		v.CanDelete = CanDelete(actor, &v.Post)
	}
	return views, nil
}

func validateContent(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "content is required")
	}
	return nil
}

func viewerID(actor *users.Actor) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
