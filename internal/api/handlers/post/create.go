package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type mutationResponse struct {
	Message string          `json:"message"`
	Post    *posts.PostView `json:"post"`
}

// HandleCreate handles POST /api/posts
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1MB leaves room for long-form content while bounding abuse
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Ownership comes from the authenticated identity, never the payload
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		writeValidationErrors(w, fieldErrors)
		return
	}

	created, err := h.service.CreatePost(r.Context(), req, *identity)
	if err != nil {
		handleServiceError(w, err, "Failed to create post")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(mutationResponse{
		Message: "Post created successfully",
		Post:    created.View(),
	}); err != nil {
		log.Printf("Failed to encode post creation response: %v", err)
	}
}
