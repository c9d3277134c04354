package auth

import (
	"log"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case users.ErrInvalidCredentials:
		handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid email or password")
	case users.ErrEmailTaken:
		handlers.WriteError(w, http.StatusConflict, "EmailTaken", "An account with this email already exists")
	case users.ErrUsernameTaken:
		handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "This username is already taken")
	case users.ErrUserNotFound:
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	default:
		log.Printf("Auth handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
