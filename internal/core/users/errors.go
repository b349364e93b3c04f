package users

import (
	"errors"
	"fmt"
)

// Sentinel errors for common user operations
var (
	// ErrUserNotFound is returned when a user lookup finds no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned when an email/password pair does not
	// match a stored account during sign-in
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AlreadyExistsError is returned when registering an email that is already
// taken. The message is part of the API contract and includes the email.
type AlreadyExistsError struct {
	Email string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("User with email %q already exists", e.Email)
}

// IsAlreadyExists checks if error is a duplicate-registration error
func IsAlreadyExists(err error) bool {
	var dup *AlreadyExistsError
	return errors.As(err, &dup)
}
