package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"inkwell/internal/core/comments"
	"inkwell/internal/core/posts"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

// Create inserts a new comment into the comments table
func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (id, author_id, post_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		comment.ID, comment.AuthorID, comment.PostID, comment.Content).
		Scan(&comment.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "comments_post_id_fkey") {
			return posts.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

// GetByID retrieves a comment by id
func (r *postgresCommentRepo) GetByID(ctx context.Context, commentID string) (*comments.Comment, error) {
	query := `
		SELECT id, author_id, post_id, content, created_at
		FROM comments
		WHERE id = $1`

	comment := &comments.Comment{}
	err := r.db.QueryRowContext(ctx, query, commentID).Scan(
		&comment.ID, &comment.AuthorID, &comment.PostID, &comment.Content, &comment.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListByPost retrieves a post's comments oldest first with author usernames
func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID string) ([]*comments.CommentView, error) {
	query := `
		SELECT c.id, c.author_id, c.post_id, c.content, c.created_at, u.username
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC, c.id ASC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	views := []*comments.CommentView{}
	for rows.Next() {
		view := &comments.CommentView{}
		if err := rows.Scan(
			&view.ID, &view.AuthorID, &view.PostID, &view.Content,
			&view.CreatedAt, &view.AuthorUsername); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comment rows: %w", err)
	}

	return views, nil
}

// Update overwrites a comment's content
func (r *postgresCommentRepo) Update(ctx context.Context, commentID, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = $2 WHERE id = $1`, commentID, content)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment row
func (r *postgresCommentRepo) Delete(ctx context.Context, commentID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
