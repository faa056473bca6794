// Package respond writes JSON bodies for the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"Takeoff/internal/calc/takeoff"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes err with the offending field when it is an input error.
func Error(w http.ResponseWriter, status int, err error) {
	body := ErrorBody{Error: err.Error()}
	var invalid *takeoff.InvalidInputError
	if errors.As(err, &invalid) {
		body.Field = invalid.Field
	}
	JSON(w, status, body)
}

// Status maps input errors to 400 and anything else to fallback.
func Status(err error, fallback int) int {
	if errors.Is(err, takeoff.ErrInvalidInput) {
		return http.StatusBadRequest
	}
	return fallback
}
