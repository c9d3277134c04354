package likes

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/users"
)

// MockLikeRepository is a mock implementation of Repository
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Create(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockLikeRepository) Delete(ctx context.Context, userID, postID string) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

// MockPostGetter is a mock implementation of PostGetter
type MockPostGetter struct {
	mock.Mock
}

func (m *MockPostGetter) GetByID(ctx context.Context, postID string) (*posts.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

var (
	reader = &users.Actor{ID: "user-5", Username: "carol"}

	publishedPost = &posts.Post{ID: "post-9", AuthorID: "author-1", State: posts.StatePublished}
	draftPost     = &posts.Post{ID: "post-9", AuthorID: "author-1", State: posts.StateDraft}
)

func TestLike(t *testing.T) {
	ctx := context.Background()

	t.Run("likes a visible post", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		likeRepo.On("Create", ctx, "user-5", "post-9").Return(nil)

		require.NoError(t, service.Like(ctx, reader, "post-9"))
		likeRepo.AssertExpectations(t)
	})

	t.Run("repeated likes are no-op successes", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		// The store's insert-if-absent absorbs the duplicate
		likeRepo.On("Create", ctx, "user-5", "post-9").Return(nil).Twice()

		require.NoError(t, service.Like(ctx, reader, "post-9"))
		require.NoError(t, service.Like(ctx, reader, "post-9"))
	})

	t.Run("unlike of a never-liked post succeeds", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		likeRepo.On("Delete", ctx, "user-5", "post-9").Return(nil)

		require.NoError(t, service.Unlike(ctx, reader, "post-9"))
	})

	t.Run("cannot like an invisible draft", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "post-9").Return(draftPost, nil)

		err := service.Like(ctx, reader, "post-9")
		assert.ErrorIs(t, err, posts.ErrForbidden)
		likeRepo.AssertNotCalled(t, "Create")
	})

	t.Run("unknown post", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "missing").Return(nil, posts.ErrPostNotFound)

		err := service.Like(ctx, reader, "missing")
		assert.ErrorIs(t, err, posts.ErrPostNotFound)
	})

	t.Run("anonymous actors are rejected", func(t *testing.T) {
		service := NewLikeService(new(MockLikeRepository), new(MockPostGetter), nil)

		assert.ErrorIs(t, service.Like(ctx, nil, "post-9"), ErrNotAuthorized)
		assert.ErrorIs(t, service.Unlike(ctx, nil, "post-9"), ErrNotAuthorized)
	})
}

func TestLikeSingleFlight(t *testing.T) {
	ctx := context.Background()

	t.Run("second toggle while one is in flight gets Busy", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		inStore := make(chan struct{})
		proceed := make(chan struct{})

		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		likeRepo.On("Create", ctx, "user-5", "post-9").
			Run(func(mock.Arguments) {
				close(inStore)
				<-proceed
			}).
			Return(nil).
			Once()

		done := make(chan error, 1)
		go func() {
			done <- service.Like(ctx, reader, "post-9")
		}()

		<-inStore // first toggle is now inside the store call
		err := service.Like(ctx, reader, "post-9")
		assert.ErrorIs(t, err, ErrToggleInFlight)

		close(proceed)
		require.NoError(t, <-done)

		// Guard released on completion: the pair can toggle again
		likeRepo.On("Delete", ctx, "user-5", "post-9").Return(nil)
		require.NoError(t, service.Unlike(ctx, reader, "post-9"))
	})

	t.Run("guard is released on store failure", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		likeRepo.On("Create", ctx, "user-5", "post-9").
			Return(assert.AnError).Once()
		likeRepo.On("Create", ctx, "user-5", "post-9").
			Return(nil).Once()

		require.Error(t, service.Like(ctx, reader, "post-9"))
		require.NoError(t, service.Like(ctx, reader, "post-9"), "failed toggle must not leave the pair locked")
	})

	t.Run("concurrent toggles settle to success or Busy, never queue", func(t *testing.T) {
		likeRepo := new(MockLikeRepository)
		postRepo := new(MockPostGetter)
		service := NewLikeService(likeRepo, postRepo, nil)

		release := make(chan struct{})
		postRepo.On("GetByID", ctx, "post-9").Return(publishedPost, nil)
		likeRepo.On("Create", ctx, "user-5", "post-9").
			Run(func(mock.Arguments) { <-release }).
			Return(nil)

		const attempts = 16
		results := make(chan error, attempts)
		var started sync.WaitGroup
		started.Add(attempts)
		for i := 0; i < attempts; i++ {
			go func() {
				started.Done()
				results <- service.Like(ctx, reader, "post-9")
			}()
		}
		started.Wait()
		close(release)

		var ok, busy int
		for i := 0; i < attempts; i++ {
			err := <-results
			if err == nil {
				ok++
			} else if errors.Is(err, ErrToggleInFlight) {
				busy++
			} else {
				t.Fatalf("unexpected toggle error: %v", err)
			}
		}
		assert.GreaterOrEqual(t, ok, 1)
		assert.Equal(t, attempts, ok+busy)
	})
}
