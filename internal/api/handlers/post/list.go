package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Inkwell/internal/core/posts"
)

// Listing defaults and bounds for the public index.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100

	// The index is cacheable by shared caches for this many seconds given
	// identical query parameters.
	indexCacheMaxAgeSeconds = "30"
)

// ListHandler serves the public paginated post index
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Query parameters: page (default 1, floor 1), limit (default 10, 1..100),
// search (optional title/content substring filter).
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit, search := parseListParams(r)

	result, err := h.service.GetPaginatedPosts(r.Context(), page, limit, search)
	if err != nil {
		handleServiceError(w, err, "Failed to list posts")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, s-maxage="+indexCacheMaxAgeSeconds)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("Failed to encode post list response: %v", err)
	}
}

// parseListParams clamps page and limit before they reach the service:
// page >= 1, 1 <= limit <= 100.
func parseListParams(r *http.Request) (page, limit int, search string) {
	query := r.URL.Query()

	page = DefaultPage
	if raw := query.Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			page = parsed
		}
	}
	if page < 1 {
		page = 1
	}

	limit = DefaultPerPage
	if raw := query.Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPerPage {
		limit = MaxPerPage
	}

	return page, limit, query.Get("search")
}
