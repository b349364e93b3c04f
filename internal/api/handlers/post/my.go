package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// MyPostsHandler serves the authenticated user's own posts
type MyPostsHandler struct {
	service posts.Service
}

// NewMyPostsHandler creates a new my-posts handler
func NewMyPostsHandler(service posts.Service) *MyPostsHandler {
	return &MyPostsHandler{service: service}
}

type myPostsResponse struct {
	Posts []*posts.PostView `json:"posts"`
}

// HandleMyPosts handles GET /api/posts/my
// Returns all posts owned by the authenticated user, newest first.
func (h *MyPostsHandler) HandleMyPosts(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r)
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	items, err := h.service.GetPostsByOwner(r.Context(), identity.ID)
	if err != nil {
		handleServiceError(w, err, "Failed to list posts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(myPostsResponse{Posts: posts.Views(items)}); err != nil {
		log.Printf("Failed to encode my posts response: %v", err)
	}
}
