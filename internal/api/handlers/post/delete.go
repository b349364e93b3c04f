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

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service    posts.Service
	authorizer *posts.Authorizer
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service, authorizer *posts.Authorizer) *DeleteHandler {
	return &DeleteHandler{
		service:    service,
		authorizer: authorizer,
	}
}

type deleteResponse struct {
	Message string `json:"message"`
}

// HandleDelete handles DELETE /api/posts/{id}
// Only the post's owner may delete it.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	target, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Failed to delete post")
		return
	}

	identity := middleware.GetIdentity(r)
	if err := h.authorizer.EnsureUserCanModifyPost(target, identity); err != nil {
		handleServiceError(w, err, "Failed to delete post")
		return
	}

	if err := h.service.DeletePost(r.Context(), target); err != nil {
		handleServiceError(w, err, "Failed to delete post")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(deleteResponse{Message: "Post deleted successfully"}); err != nil {
		log.Printf("Failed to encode post deletion response: %v", err)
	}
}
