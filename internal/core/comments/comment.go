package comments

import "time"

// Comment represents a comment row
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	AuthorID  string    `json:"authorId" db:"author_id"`
	PostID    string    `json:"postId" db:"post_id"`
	Content   string    `json:"content" db:"content"`
}

// CommentView is a comment enriched for the requesting actor
type CommentView struct {
	Comment
	AuthorUsername string `json:"authorUsername"`
	CanDelete      bool   `json:"canDelete"`
}
