package posts

import (
	"context"
	"errors"
	"time"

	"Inkwell/internal/core/users"
)

type postService struct {
	repo Repository
	now  func() time.Time
}

// NewPostService creates a new post service
func NewPostService(repo Repository) Service {
	return &postService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// GetPaginatedPosts fetches one page of posts plus the total count matching
// the same search filter. Pagination math: offset = (page-1) * limit.
func (s *postService) GetPaginatedPosts(ctx context.Context, page, limit int, search string) (*PaginatedPosts, error) {
	offset := (page - 1) * limit

	items, err := s.repo.ListPaginated(ctx, offset, limit, search)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountAll(ctx, search)
	if err != nil {
		return nil, err
	}

	return &PaginatedPosts{
		CurrentPage: page,
		PerPage:     limit,
		Total:       total,
		Posts:       Views(items),
	}, nil
}

// GetPostByID returns the post or a typed not-found error carrying the id.
// Store failures propagate unchanged.
func (s *postService) GetPostByID(ctx context.Context, id int64) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPostsByOwner returns the user's posts, newest first.
func (s *postService) GetPostsByOwner(ctx context.Context, ownerID int64) ([]*Post, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// CreatePost persists a new post owned by owner. Both timestamps are
// captured once before persistence.
func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest, owner users.Identity) (*Post, error) {
	now := s.now()
	post := &Post{
		Title:      req.Title,
		Content:    req.Content,
		OwnerID:    owner.ID,
		OwnerEmail: owner.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost overwrites title and content unconditionally and refreshes
// updatedAt. createdAt and ownership never change.
func (s *postService) UpdatePost(ctx context.Context, post *Post, req UpdatePostRequest) (*Post, error) {
	post.Title = req.Title
	post.Content = req.Content
	post.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// DeletePost removes the post from the store.
func (s *postService) DeletePost(ctx context.Context, post *Post) error {
	return s.repo.Delete(ctx, post.ID)
}
