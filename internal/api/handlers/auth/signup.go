package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/core/users"
)

// SignupHandler handles account registration requests
type SignupHandler struct {
	registration users.RegistrationService
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(registration users.RegistrationService) *SignupHandler {
	return &SignupHandler{registration: registration}
}

type signupResponse struct {
	Message string     `json:"message"`
	User    signupUser `json:"user"`
}

type signupUser struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// HandleSignup handles POST /api/auth/signup
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req users.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		details := make(map[string]string, len(fieldErrors))
		for _, fe := range fieldErrors {
			details[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, validationErrorResponse{
			Error:   "Validation failed",
			Details: details,
		})
		return
	}

	user, err := h.registration.RegisterUser(r.Context(), req)
	if err != nil {
		if users.IsAlreadyExists(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Unexpected error during signup: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		Message: "User created successfully!",
		User:    signupUser{ID: user.ID, Email: user.Email},
	})
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
