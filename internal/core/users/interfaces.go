package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Create inserts a new user and returns it with id and timestamps set.
	// A duplicate email surfaces as *AlreadyExistsError (the users.email
	// unique index backs up the service-level existence check).
	Create(ctx context.Context, user *User) (*User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns ErrUserNotFound when no row matches.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves a user by primary key.
	// Returns ErrUserNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*User, error)
}

// RegistrationService defines the signup business logic
type RegistrationService interface {
	// RegisterUser checks email uniqueness, hashes the password and persists
	// the new account with the default role set.
	RegisterUser(ctx context.Context, req SignupRequest) (*User, error)
}

// Hasher produces and verifies opaque password hashes.
// Hash receives the user being created alongside the plaintext so that
// implementations may fold identity into the salt material; the bcrypt
// implementation does not need to.
type Hasher interface {
	Hash(user *User, plaintext string) (string, error)
	Compare(hashed, plaintext string) error
}
