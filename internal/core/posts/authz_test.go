package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkwell/internal/core/users"
)

var (
	author    = &users.Actor{ID: "author-1", Username: "alice"}
	stranger  = &users.Actor{ID: "user-2", Username: "bob"}
	admin     = &users.Actor{ID: "admin-1", Username: "mallory", IsAdmin: true}
	anonymous *users.Actor
)

func draft() *Post {
	return &Post{ID: "post-1", AuthorID: "author-1", State: StateDraft}
}

func published() *Post {
	return &Post{ID: "post-1", AuthorID: "author-1", State: StatePublished}
}

func TestCanView(t *testing.T) {
	tests := []struct {
		name  string
		actor *users.Actor
		post  *Post
		want  bool
	}{
		{"anyone views published", stranger, published(), true},
		{"anonymous views published", anonymous, published(), true},
		{"author views own draft", author, draft(), true},
		{"admin views any draft", admin, draft(), true},
		{"stranger cannot view draft", stranger, draft(), false},
		{"anonymous cannot view draft", anonymous, draft(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.actor, tt.post))
		})
	}
}

func TestCanEdit(t *testing.T) {
	tests := []struct {
		name  string
		actor *users.Actor
		post  *Post
		want  bool
	}{
		{"author edits own draft", author, draft(), true},
		{"author cannot edit once published", author, published(), false},
		{"stranger cannot edit draft", stranger, draft(), false},
		{"admin gets no edit override", admin, draft(), false},
		{"admin cannot edit published", admin, published(), false},
		{"anonymous cannot edit", anonymous, draft(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.actor, tt.post))
		})
	}
}

func TestCanDelete(t *testing.T) {
	tests := []struct {
		name  string
		actor *users.Actor
		post  *Post
		want  bool
	}{
		{"author deletes own draft", author, draft(), true},
		{"author deletes own published post", author, published(), true},
		{"admin deletes anything", admin, published(), true},
		{"stranger cannot delete", stranger, published(), false},
		{"anonymous cannot delete", anonymous, published(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.post))
		})
	}
}
