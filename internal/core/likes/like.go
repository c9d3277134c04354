package likes

import "time"

// Like represents a like row. The (UserID, PostID) pair is the composite key:
// an actor likes a given post at most once, and a like carries no other state.
type Like struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UserID    string    `json:"userId" db:"user_id"`
	PostID    string    `json:"postId" db:"post_id"`
}
