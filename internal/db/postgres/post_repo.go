package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"inkwell/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// viewColumns selects a post row joined with its author plus the engagement
// aggregates. The counts and the viewer's like state are subqueries evaluated
// in the same read, so they can never drift from the underlying rows the way
// persisted counters would. $1 is the viewer id ('' for anonymous readers,
// which matches no likes).
const viewColumns = `
		p.id, p.author_id, u.username, p.title, p.content, p.is_published,
		p.attachment_path, p.created_at,
		(SELECT COUNT(*) FROM likes l WHERE l.post_id = p.id) AS like_count,
		(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count,
		EXISTS (SELECT 1 FROM likes l WHERE l.post_id = p.id AND l.user_id = $1) AS viewer_liked`

// Create inserts a new post into the posts table
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, author_id, title, content, is_published, attachment_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		post.ID, post.AuthorID, post.Title, post.Content,
		stateToInt(post.State), post.AttachmentPath).
		Scan(&post.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "posts_author_id_fkey") {
			return fmt.Errorf("author %s does not exist: %w", post.AuthorID, err)
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetByID retrieves a bare post row without engagement aggregates
func (r *postgresPostRepo) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	query := `
		SELECT id, author_id, title, content, is_published, attachment_path, created_at
		FROM posts
		WHERE id = $1`

	post := &posts.Post{}
	var published int

	err := r.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Content,
		&published, &post.AttachmentPath, &post.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.State = intToState(published)
	return post, nil
}

// GetView retrieves a post with its aggregates computed for viewerID
func (r *postgresPostRepo) GetView(ctx context.Context, postID, viewerID string) (*posts.PostView, error) {
	query := `
		SELECT` + viewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $2`

	view, err := scanPostView(r.db.QueryRowContext(ctx, query, viewerID, postID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post view: %w", err)
	}

	return view, nil
}

// ListPublished retrieves all published posts, newest first, with aggregates
func (r *postgresPostRepo) ListPublished(ctx context.Context, viewerID string) ([]*posts.PostView, error) {
	query := `
		SELECT` + viewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.is_published = 1
		ORDER BY p.created_at DESC, p.id DESC`

	return r.queryViews(ctx, query, viewerID)
}

// ListByAuthor retrieves every post by an author in any state, newest first
func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID, viewerID string) ([]*posts.PostView, error) {
	query := `
		SELECT` + viewColumns + `
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.author_id = $2
		ORDER BY p.created_at DESC, p.id DESC`

	return r.queryViews(ctx, query, viewerID, authorID)
}

// Update overwrites the mutable columns of a post
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, is_published = $4, attachment_path = $5
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, stateToInt(post.State), post.AttachmentPath)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

// Delete removes a post. Likes and comments go with it in the same statement
// through ON DELETE CASCADE on their foreign keys.
func (r *postgresPostRepo) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}

func (r *postgresPostRepo) queryViews(ctx context.Context, query string, args ...interface{}) ([]*posts.PostView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	views := []*posts.PostView{}
	for rows.Next() {
		view, err := scanPostView(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return views, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPostView maps one joined row into a typed view. Raw rows never leave
// this package.
func scanPostView(row rowScanner) (*posts.PostView, error) {
	view := &posts.PostView{}
	var published int

	err := row.Scan(
		&view.ID, &view.AuthorID, &view.AuthorUsername, &view.Title, &view.Content,
		&published, &view.AttachmentPath, &view.CreatedAt,
		&view.LikeCount, &view.CommentCount, &view.ViewerLiked)
	if err != nil {
		return nil, err
	}

	view.State = intToState(published)
	view.IsPublished = view.Published()
	return view, nil
}

// The publication flag is an integer only at this boundary; everything above
// works with posts.State.

func stateToInt(s posts.State) int {
	if s == posts.StatePublished {
		return 1
	}
	return 0
}

func intToState(i int) posts.State {
	if i == 1 {
		return posts.StatePublished
	}
	return posts.StateDraft
}
