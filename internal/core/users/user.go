package users

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// RoleUser is the role every account receives at signup.
const RoleUser = "ROLE_USER"

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 8

// User represents an account row in the database.
// Password holds the bcrypt hash and is never serialized to clients.
type User struct {
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Roles     []string  `json:"roles" db:"roles"`
	ID        int64     `json:"id" db:"id"`
}

// HasRole reports whether the user carries the given role label.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Identity is the authenticated principal extracted from a verified token.
// Handlers receive it from the request context, never from ambient state.
type Identity struct {
	Email string
	ID    int64
}

// SignupRequest is the request body for POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// FieldError pairs a request field path with a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the signup payload and returns one error per failing field.
func (r SignupRequest) Validate() []FieldError {
	var errs []FieldError

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email is required"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, FieldError{Field: "email", Message: "Invalid email format"})
	}

	if r.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password is required"})
	} else if utf8.RuneCountInString(r.Password) < MinPasswordLength {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be at least 8 characters long"})
	}

	return errs
}
