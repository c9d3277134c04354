package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/internal/core/comments"
	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

// setupTestDB connects to the test database and runs migrations.
// Tests in this file need a live database; they skip when
// TEST_DATABASE_URL is not set.
func setupTestDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, goose.Up(db, "../migrations"), "Failed to run migrations")

	return db
}

// cleanupTestRows removes rows created by these tests. Post deletion
// cascades into likes and comments, so those tables need no statements of
// their own.
func cleanupTestRows(t *testing.T, db *sql.DB) {
	_, err := db.Exec("DELETE FROM posts WHERE id LIKE 'repotest-%'")
	require.NoError(t, err, "Failed to cleanup posts")

	_, err = db.Exec("DELETE FROM users WHERE id LIKE 'repotest-%'")
	require.NoError(t, err, "Failed to cleanup test users")
}

// createRepoTestUser inserts a minimal user row to satisfy foreign keys
func createRepoTestUser(t *testing.T, db *sql.DB, id, username string) {
	repo := NewUserRepository(db)
	_, err := repo.Create(context.Background(), &users.User{
		ID:           id,
		Username:     username,
		Email:        username + "@repotest.local",
		PasswordHash: "not-a-real-hash",
	})
	require.NoError(t, err, "Failed to create test user")
}

func TestPostRepo_Delete_CascadesToLikesAndComments(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	postRepo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)
	commentRepo := NewCommentRepository(db)
	ctx := context.Background()

	authorID := "repotest-author-cascade"
	readerID := "repotest-reader-cascade"
	createRepoTestUser(t, db, authorID, "repotest-author-cascade")
	createRepoTestUser(t, db, readerID, "repotest-reader-cascade")

	post := &posts.Post{
		ID:       "repotest-post-cascade",
		AuthorID: authorID,
		Title:    "Doomed post",
		Content:  "Everything hanging off this row goes with it",
		State:    posts.StatePublished,
	}
	require.NoError(t, postRepo.Create(ctx, post))

	require.NoError(t, likeRepo.Create(ctx, authorID, post.ID))
	require.NoError(t, likeRepo.Create(ctx, readerID, post.ID))
	require.NoError(t, commentRepo.Create(ctx, &comments.Comment{
		ID:       "repotest-comment-cascade",
		AuthorID: readerID,
		PostID:   post.ID,
		Content:  "Soon to be gone",
	}))

	// The dependent rows are really there before the delete
	view, err := postRepo.GetView(ctx, post.ID, readerID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.LikeCount)
	assert.Equal(t, 1, view.CommentCount)
	assert.True(t, view.ViewerLiked)

	require.NoError(t, postRepo.Delete(ctx, post.ID))

	_, err = postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)

	var likeCount int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM likes WHERE post_id = $1", post.ID).Scan(&likeCount))
	assert.Zero(t, likeCount, "Deleting a post should remove its likes")

	var commentCount int
	require.NoError(t, db.QueryRow(
		"SELECT COUNT(*) FROM comments WHERE post_id = $1", post.ID).Scan(&commentCount))
	assert.Zero(t, commentCount, "Deleting a post should remove its comments")
}

func TestPostRepo_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()

	postRepo := NewPostRepository(db)

	err := postRepo.Delete(context.Background(), "repotest-no-such-post")
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestPostRepo_GetView_AnonymousViewerLikesNothing(t *testing.T) {
	db := setupTestDB(t)
	defer func() { _ = db.Close() }()
	defer cleanupTestRows(t, db)

	postRepo := NewPostRepository(db)
	likeRepo := NewLikeRepository(db)
	ctx := context.Background()

	authorID := "repotest-author-anon"
	createRepoTestUser(t, db, authorID, "repotest-author-anon")

	post := &posts.Post{
		ID:       "repotest-post-anon",
		AuthorID: authorID,
		Title:    "Liked post",
		Content:  "The author likes their own work",
		State:    posts.StatePublished,
	}
	require.NoError(t, postRepo.Create(ctx, post))
	require.NoError(t, likeRepo.Create(ctx, authorID, post.ID))

	view, err := postRepo.GetView(ctx, post.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, view.LikeCount)
	assert.False(t, view.ViewerLiked, "An anonymous viewer has liked nothing")
}
