// Package envelope defines the uniform JSON response wrapper every endpoint
// answers with, success or failure.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Success is the envelope for successful responses.
type Success struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Error is the envelope for failed responses. Errors carries optional
// field-level detail; Stack is populated only in development mode.
type Error struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// WriteSuccess writes a success envelope with the given status and payload.
func WriteSuccess(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Success{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteError writes a failure envelope. errs may be nil when there is no
// field-level detail to attach.
func WriteError(w http.ResponseWriter, status int, message string, errs any) {
	write(w, status, Error{
		Status:  status,
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// WriteErrorStack writes a failure envelope including a stack trace.
func WriteErrorStack(w http.ResponseWriter, status int, message string, errs any, stack string) {
	write(w, status, Error{
		Status:  status,
		Success: false,
		Message: message,
		Errors:  errs,
		Stack:   stack,
	})
}

// WriteGenericError writes the catch-all 500 envelope used when an internal
// failure should not leak detail to the client.
func WriteGenericError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Generic error occurred", map[string]string{
		"server": "Internal server error",
	})
}

func write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
