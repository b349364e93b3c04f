package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/core/posts"
)

// GetHandler serves single post lookups
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/posts/{id}
// The route pattern constrains {id} to decimal digits, so parsing cannot
// fail for requests that reach this handler.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Post not found")
		return
	}

	post, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, "Failed to fetch post")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(post.View()); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}
