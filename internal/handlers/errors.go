package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse represents an error payload shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, code int, message string) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
