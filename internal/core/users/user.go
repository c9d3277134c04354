package users

import "time"

// User represents a registered account
type User struct {
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`
}

// Actor is the identity attached to the current request.
// A nil *Actor means the request is anonymous.
type Actor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Actor returns the request identity for this user
func (u *User) Actor() *Actor {
	return &Actor{
		ID:       u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}
}

// RegisterRequest represents input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
