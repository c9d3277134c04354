package auth

import (
	"encoding/json"
	"net/http"

	"inkwell/internal/api/handlers"
	"inkwell/internal/api/middleware"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies credentials and starts a session
// POST /api/users/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	user, err := h.userService.VerifyCredentials(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to start session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user.Actor())
}

// HandleLogout ends the current session
// POST /api/users/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to end session")
		return
	}
	handlers.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// HandleMe returns the current actor
// GET /api/users/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r)
	if actor == nil {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Not signed in")
		return
	}
	handlers.WriteJSON(w, http.StatusOK, actor)
}
