package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type registrationService struct {
	userRepo UserRepository
	hasher   Hasher
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(userRepo UserRepository, hasher Hasher) RegistrationService {
	return &registrationService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// RegisterUser registers a new account with the default role set.
// Emails are matched exactly (case-sensitive, natural key).
func (s *registrationService) RegisterUser(ctx context.Context, req SignupRequest) (*User, error) {
	email := strings.TrimSpace(req.Email)

	if err := s.ensureUserDoesNotExist(ctx, email); err != nil {
		return nil, err
	}

	user := &User{
		Email: email,
		Roles: []string{RoleUser},
	}

	hashed, err := s.hasher.Hash(user, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashed

	// The unique index on users.email backs this up if a concurrent signup
	// races past the existence check; the repository maps the duplicate-key
	// error to the same AlreadyExistsError.
	return s.userRepo.Create(ctx, user)
}

func (s *registrationService) ensureUserDoesNotExist(ctx context.Context, email string) error {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return &AlreadyExistsError{Email: email}
	}
	return nil
}
