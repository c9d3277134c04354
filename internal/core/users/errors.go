package users

import "errors"

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when registering with an email that belongs to another account
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when registering with a username that belongs to another account
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned for both unknown emails and wrong passwords,
	// so login attempts cannot probe which addresses are registered
	ErrInvalidCredentials = errors.New("invalid email or password")
)
