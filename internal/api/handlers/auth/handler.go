package auth

import (
	"github.com/go-playground/validator/v10"

	"inkwell/internal/api/middleware"
	"inkwell/internal/core/users"
)

// AuthHandler handles registration, login, logout, and the current-actor probe
type AuthHandler struct {
	userService users.Service
	sessions    *middleware.SessionAuth
	validate    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService users.Service, sessions *middleware.SessionAuth) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		sessions:    sessions,
		validate:    validator.New(),
	}
}
