package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// mockUserRepo is a mock implementation of users.UserRepository
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func newSigninFixture(t *testing.T) (*mockUserRepo, *SigninInterceptor, http.Handler) {
	t.Helper()

	repo := new(mockUserRepo)
	hasher := users.NewBcryptHasher(bcrypt.MinCost)
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	interceptor := NewSigninInterceptor(repo, hasher, tokens)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The placeholder behind the interceptor must never run for signin
		if r.URL.Path == SigninPath {
			t.Fatal("sign-in request reached the routed handler")
		}
		w.WriteHeader(http.StatusOK)
	})

	return repo, interceptor, interceptor.Middleware(next)
}

func signinBody(email, password string) *strings.Reader {
	payload, _ := json.Marshal(map[string]string{"email": email, "password": password})
	return strings.NewReader(string(payload))
}

func TestSigninInterceptor_ValidCredentials(t *testing.T) {
	repo, _, handler := newSigninFixture(t)

	hasher := users.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash(nil, "12345678")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(&users.User{ID: 1, Email: "a@b.com", Password: hashed}, nil)

	req := httptest.NewRequest(http.MethodPost, SigninPath, signinBody("a@b.com", "12345678"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(900), resp.ExpiresIn)

	// The issued token must satisfy the auth middleware
	tokens := auth.NewTokenService("test-secret", 15*time.Minute)
	claims, err := tokens.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
}

func TestSigninInterceptor_WrongPassword(t *testing.T) {
	repo, _, handler := newSigninFixture(t)

	hasher := users.NewBcryptHasher(bcrypt.MinCost)
	hashed, err := hasher.Hash(nil, "12345678")
	require.NoError(t, err)

	repo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(&users.User{ID: 1, Email: "a@b.com", Password: hashed}, nil)

	req := httptest.NewRequest(http.MethodPost, SigninPath, signinBody("a@b.com", "wrong"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestSigninInterceptor_UnknownEmail(t *testing.T) {
	repo, _, handler := newSigninFixture(t)

	repo.On("GetByEmail", mock.Anything, "nobody@b.com").
		Return(nil, users.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPost, SigninPath, signinBody("nobody@b.com", "12345678"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Unknown emails answer identically to wrong passwords
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())
}

func TestSigninInterceptor_OtherRequestsPassThrough(t *testing.T) {
	_, _, handler := newSigninFixture(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
