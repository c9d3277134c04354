package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"inkwell/internal/core/likes"
	"inkwell/internal/core/posts"
)

type postgresLikeRepo struct {
	db *sql.DB
}

// NewLikeRepository creates a new PostgreSQL like repository
func NewLikeRepository(db *sql.DB) likes.Repository {
	return &postgresLikeRepo{db: db}
}

// Create inserts a like for the (user, post) pair.
// Idempotent: ON CONFLICT DO NOTHING on the composite primary key absorbs
// duplicates, so retries and repeated likes are no-op successes.
func (r *postgresLikeRepo) Create(ctx context.Context, userID, postID string) error {
	query := `
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		if strings.Contains(err.Error(), "likes_post_id_fkey") {
			return posts.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}

	return nil
}

// Delete removes the like for the (user, post) pair if present.
// Idempotent: zero rows affected means the like was never there, which is a
// no-op success for unlike.
func (r *postgresLikeRepo) Delete(ctx context.Context, userID, postID string) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}

	return nil
}
