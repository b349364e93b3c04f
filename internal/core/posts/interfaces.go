package posts

import (
	"context"

	"Inkwell/internal/core/users"
)

// Service defines the business logic interface for posts.
// Orchestrates the repository and owns timestamping; authorization is the
// Authorizer's job and runs at the handler boundary.
type Service interface {
	// GetPaginatedPosts returns one page of posts plus pagination metadata.
	// page is 1-based and limit must be pre-clamped by the caller.
	GetPaginatedPosts(ctx context.Context, page, limit int, search string) (*PaginatedPosts, error)

	// GetPostByID returns the post or a *NotFoundError carrying the id.
	GetPostByID(ctx context.Context, id int64) (*Post, error)

	// GetPostsByOwner returns all posts owned by the user, newest first.
	GetPostsByOwner(ctx context.Context, ownerID int64) ([]*Post, error)

	// CreatePost builds and persists a new post owned by owner.
	// createdAt and updatedAt are both set to the same instant.
	CreatePost(ctx context.Context, req CreatePostRequest, owner users.Identity) (*Post, error)

	// UpdatePost overwrites title and content and refreshes updatedAt.
	UpdatePost(ctx context.Context, post *Post, req UpdatePostRequest) (*Post, error)

	// DeletePost removes the post from the store.
	DeletePost(ctx context.Context, post *Post) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// GetByID retrieves a post by primary key.
	// Returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Post, error)

	// ListByOwner returns all posts owned by the user, createdAt descending.
	ListByOwner(ctx context.Context, ownerID int64) ([]*Post, error)

	// ListPaginated returns a window over all posts ordered by createdAt
	// descending. A non-empty search filters to posts whose title or content
	// contains the substring.
	ListPaginated(ctx context.Context, offset, limit int, search string) ([]*Post, error)

	// CountAll counts posts matching the same filter as ListPaginated,
	// ignoring the window.
	CountAll(ctx context.Context, search string) (int, error)

	// Create inserts the post and fills in its id.
	Create(ctx context.Context, post *Post) error

	// Update persists title, content and updatedAt for an existing post.
	Update(ctx context.Context, post *Post) error

	// Delete removes the post row. Returns ErrNotFound if nothing matched.
	Delete(ctx context.Context, id int64) error
}
