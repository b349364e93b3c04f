package posts

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Title and content constraints, enforced at the request boundary.
const (
	TitleMinLength   = 3
	TitleMaxLength   = 255
	ContentMinLength = 10
)

// Post represents a blog post row.
// OwnerEmail is filled by repository queries that join the users table; it
// is not a column on posts.
type Post struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	OwnerEmail string    `json:"-" db:"owner_email"`
	ID         int64     `json:"id" db:"id"`
	OwnerID    int64     `json:"ownerId" db:"owner_id"`
}

// PostView is the JSON projection returned to clients.
// The field set is identical across list, show, create and update responses.
type PostView struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Owner     OwnerView `json:"owner"`
	ID        int64     `json:"id"`
}

// OwnerView is the minimal owner info embedded in post views.
type OwnerView struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// View builds the client projection of the post.
func (p *Post) View() *PostView {
	return &PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Owner:     OwnerView{ID: p.OwnerID, Email: p.OwnerEmail},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// Views projects a slice of posts. Always returns a non-nil slice so empty
// result sets serialize as [] rather than null.
func Views(items []*Post) []*PostView {
	views := make([]*PostView, 0, len(items))
	for _, p := range items {
		views = append(views, p.View())
	}
	return views
}

// PaginatedPosts is the response shape for the paginated listing.
type PaginatedPosts struct {
	Posts       []*PostView `json:"posts"`
	CurrentPage int         `json:"current_page"`
	PerPage     int         `json:"per_page"`
	Total       int         `json:"total"`
}

// CreatePostRequest is the request body for creating a post.
type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks the payload and returns one error per failing field.
func (r CreatePostRequest) Validate() []FieldError {
	return validateTitleAndContent(r.Title, r.Content)
}

// UpdatePostRequest is the request body for updating a post.
// Title and content are overwritten unconditionally on update, so the same
// constraints apply as on create.
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate checks the payload and returns one error per failing field.
func (r UpdatePostRequest) Validate() []FieldError {
	return validateTitleAndContent(r.Title, r.Content)
}

func validateTitleAndContent(title, content string) []FieldError {
	var errs []FieldError

	switch n := utf8.RuneCountInString(title); {
	case strings.TrimSpace(title) == "":
		errs = append(errs, FieldError{Field: "title", Message: "Title is required"})
	case n < TitleMinLength:
		errs = append(errs, FieldError{Field: "title", Message: "Title must be at least 3 characters long"})
	case n > TitleMaxLength:
		errs = append(errs, FieldError{Field: "title", Message: "Title cannot be longer than 255 characters"})
	}

	switch n := utf8.RuneCountInString(content); {
	case strings.TrimSpace(content) == "":
		errs = append(errs, FieldError{Field: "content", Message: "Content is required"})
	case n < ContentMinLength:
		errs = append(errs, FieldError{Field: "content", Message: "Content must be at least 10 characters long"})
	}

	return errs
}
