package users

import "context"

// Service defines the business logic interface for accounts
type Service interface {
	// Register creates a new account with a hashed password.
	// New accounts are never admins; the flag is only set out-of-band.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// VerifyCredentials checks an email/password pair and returns the
	// matching user. Unknown email and wrong password are indistinguishable
	// to the caller (both return ErrInvalidCredentials).
	VerifyCredentials(ctx context.Context, email, password string) (*User, error)

	// GetByID retrieves a user by their id
	GetByID(ctx context.Context, id string) (*User, error)

	// EnsureAdmin creates an admin account with the given credentials if no
	// account with that email exists yet. The password is hashed the same
	// way Register hashes it. Called once at startup; this is the only path
	// that stores is_admin=true.
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

// Repository defines the data access interface for users
type Repository interface {
	// Create inserts a new user row
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail retrieves a user by their unique email
	GetByEmail(ctx context.Context, email string) (*User, error)
}
