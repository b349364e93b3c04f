package users

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *User) (*User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestRegisterUser_FreshEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, ErrUserNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*users.User")).
		Return(&User{ID: 1, Email: "a@b.com", Roles: []string{RoleUser}}, nil)

	// bcrypt.MinCost keeps the test fast while exercising the real hasher
	service := NewRegistrationService(mockRepo, NewBcryptHasher(bcrypt.MinCost))
	user, err := service.RegisterUser(context.Background(), SignupRequest{
		Email:    "a@b.com",
		Password: "12345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.True(t, user.HasRole(RoleUser))

	// The persisted password is an opaque hash, never the plaintext
	persisted := mockRepo.Calls[1].Arguments.Get(1).(*User)
	assert.NotEqual(t, "12345678", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("12345678")))

	mockRepo.AssertExpectations(t)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	existing := &User{ID: 1, Email: "a@b.com"}
	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(existing, nil)

	service := NewRegistrationService(mockRepo, NewBcryptHasher(bcrypt.MinCost))
	_, err := service.RegisterUser(context.Background(), SignupRequest{
		Email:    "a@b.com",
		Password: "12345678",
	})

	require.Error(t, err)
	assert.True(t, IsAlreadyExists(err))
	assert.Equal(t, `User with email "a@b.com" already exists`, err.Error())

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUser_RepositoryErrorPropagates(t *testing.T) {
	mockRepo := new(MockUserRepository)
	storeErr := errors.New("connection refused")
	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(nil, storeErr)

	service := NewRegistrationService(mockRepo, NewBcryptHasher(bcrypt.MinCost))
	_, err := service.RegisterUser(context.Background(), SignupRequest{
		Email:    "a@b.com",
		Password: "12345678",
	})

	assert.ErrorIs(t, err, storeErr)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupRequest_Validate(t *testing.T) {
	cases := []struct {
		name       string
		email      string
		password   string
		wantFields []string
	}{
		{"valid", "a@b.com", "12345678", nil},
		{"missing email", "", "12345678", []string{"email"}},
		{"invalid email", "not-an-email", "12345678", []string{"email"}},
		{"missing password", "a@b.com", "", []string{"password"}},
		{"short password", "a@b.com", "1234567", []string{"password"}},
		{"both invalid", "", "short", []string{"email", "password"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := SignupRequest{Email: tc.email, Password: tc.password}.Validate()

			assert.Len(t, errs, len(tc.wantFields))
			got := make(map[string]bool, len(errs))
			for _, e := range errs {
				got[e.Field] = true
			}
			for _, field := range tc.wantFields {
				assert.True(t, got[field], "expected error for field %q", field)
			}
		})
	}
}

func TestBcryptHasher_CompareRejectsWrongPassword(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash(&User{Email: "a@b.com"}, "correct-horse")
	require.NoError(t, err)

	assert.NoError(t, hasher.Compare(hashed, "correct-horse"))
	assert.Error(t, hasher.Compare(hashed, "wrong-horse"))
}
