package posts

import "time"

// State is the publication state of a post.
// Stored as an integer flag at the database boundary only.
type State int

const (
	// StateDraft posts are visible and editable only by their author (and visible to admins)
	StateDraft State = iota
	// StatePublished posts are world-visible and immutable; there is no unpublish
	StatePublished
)

func (s State) String() string {
	if s == StatePublished {
		return "published"
	}
	return "draft"
}

// Post represents a post row in the content store
type Post struct {
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	AttachmentPath *string   `json:"attachmentPath,omitempty" db:"attachment_path"`
	ID             string    `json:"id" db:"id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	State          State     `json:"-" db:"is_published"`
}

// Published reports whether the post is world-visible
func (p *Post) Published() bool {
	return p.State == StatePublished
}

// PostView is a post enriched for the requesting actor.
// The engagement counts are computed by the store at read time and never persisted.
type PostView struct {
	Post
	AuthorUsername string `json:"authorUsername"`
	LikeCount      int    `json:"likeCount"`
	CommentCount   int    `json:"commentCount"`
	ViewerLiked    bool   `json:"viewerLiked"`
	CanDelete      bool   `json:"canDelete"`
	IsPublished    bool   `json:"isPublished"`
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	AttachmentPath *string `json:"attachmentPath,omitempty"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Publish        bool    `json:"isPublished"`
}

// UpdatePostRequest represents input for updating a draft
type UpdatePostRequest struct {
	AttachmentPath *string `json:"attachmentPath,omitempty"`
	Title          string  `json:"title"`
	Content        string  `json:"content"`
	Publish        bool    `json:"isPublished"`
}
