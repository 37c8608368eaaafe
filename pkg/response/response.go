// Package response writes the API's JSON envelopes: failures are
// {"error": message}, successes carry a message plus one named payload
// key, mirroring the established wire format of the service.
package response

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// Error writes {"error": message}.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"error": message})
}

// Message writes {"message": message} for operations with no payload.
func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, map[string]string{"message": message})
}

// Success writes {"message": message, <key>: payload}.
func Success(w http.ResponseWriter, statusCode int, message, key string, payload interface{}) {
	JSON(w, statusCode, map[string]interface{}{
		"message": message,
		key:       payload,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Conflict"
	}
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}
