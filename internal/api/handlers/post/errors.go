package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/core/posts"
)

// PermissionDeniedMessage is the exact 403 body text for non-owner mutations.
const PermissionDeniedMessage = "You do not have permission to modify this post"

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Error: message}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// writeValidationErrors writes a 400 response with a field -> message map
func writeValidationErrors(w http.ResponseWriter, fieldErrors []posts.FieldError) {
	details := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		details[fe.Field] = fe.Message
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(validationErrorResponse{
		Error:   "Validation failed",
		Details: details,
	}); err != nil {
		log.Printf("Failed to encode validation error response: %v", err)
	}
}

// handleServiceError maps domain errors to HTTP responses. Anything
// unclassified is logged and downgraded to a generic 500 carrying only the
// fallback message, never internal detail. Every post endpoint, reads
// included, routes failures through here.
func handleServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, posts.ErrNotOwner):
		writeError(w, http.StatusForbidden, PermissionDeniedMessage)

	default:
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
