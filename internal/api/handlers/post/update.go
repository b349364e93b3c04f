package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service    posts.Service
	authorizer *posts.Authorizer
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service, authorizer *posts.Authorizer) *UpdateHandler {
	return &UpdateHandler{
		service:    service,
		authorizer: authorizer,
	}
}

// HandleUpdate handles PUT/PATCH /api/posts/update/{id}
// Order matters: existence first (404), then ownership (403), then payload
// validation (400).
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	target, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Failed to update post")
		return
	}

	identity := middleware.GetIdentity(r)
	if err := h.authorizer.EnsureUserCanModifyPost(target, identity); err != nil {
		handleServiceError(w, err, "Failed to update post")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		writeValidationErrors(w, fieldErrors)
		return
	}

	updated, err := h.service.UpdatePost(r.Context(), target, req)
	if err != nil {
		handleServiceError(w, err, "Failed to update post")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(mutationResponse{
		Message: "Post updated successfully",
		Post:    updated.View(),
	}); err != nil {
		log.Printf("Failed to encode post update response: %v", err)
	}
}
