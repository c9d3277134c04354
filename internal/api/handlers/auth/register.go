package auth

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/core/users"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=2,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// HandleRegister creates a new account and signs it in
// POST /api/users/register
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	user, err := h.userService.Register(r.Context(), users.RegisterRequest{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to start session")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user.Actor())
}
