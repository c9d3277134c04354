package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorBody is the shape of every error response the API returns:
// a stable machine-readable code plus a human-readable message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteError writes an error response in the shared JSON shape
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	WriteJSON(w, statusCode, errorBody{Error: errorType, Message: message})
}

// WriteJSON writes any body as JSON with the given status
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
