package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for common post operations
var (
	// ErrNotFound is returned by the repository when a lookup matches no row
	ErrNotFound = errors.New("post not found")

	// ErrNotOwner is returned when a user who is not the owner attempts to
	// modify a post
	ErrNotOwner = errors.New("user is not the post owner")
)

// NotFoundError carries the requested id; its message is part of the API
// contract for 404 responses.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Post with ID %d not found", e.ID)
}

// IsNotFound checks if error signals a missing post at any layer
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound) || errors.Is(err, ErrNotFound)
}

// FieldError pairs a request field path with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
