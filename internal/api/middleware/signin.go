package middleware

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// SigninPath is the route the interceptor answers. The handler registered
// at this path is a placeholder and must never run.
const SigninPath = "/api/auth/signin"

// SigninInterceptor performs credential authentication for the sign-in
// route before routing ever reaches the placeholder handler. The routed
// handler existing only as a routing-table entry mirrors how the login
// transaction belongs to the auth layer, not the controller.
type SigninInterceptor struct {
	userRepo users.UserRepository
	hasher   users.Hasher
	tokens   auth.TokenService
}

// NewSigninInterceptor creates a new sign-in interceptor
func NewSigninInterceptor(userRepo users.UserRepository, hasher users.Hasher, tokens auth.TokenService) *SigninInterceptor {
	return &SigninInterceptor{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

type signinRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Middleware intercepts POST requests to the sign-in path and answers them
// directly; everything else passes through untouched.
func (i *SigninInterceptor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == SigninPath {
			i.handleSignin(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (i *SigninInterceptor) handleSignin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSigninError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, ttl, err := i.login(r, req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			writeSigninError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("Unexpected error during sign-in: %v", err)
		writeSigninError(w, http.StatusInternalServerError, "An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(signinResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   ttl,
	}); err != nil {
		log.Printf("Failed to encode sign-in response: %v", err)
	}
}

func (i *SigninInterceptor) login(r *http.Request, req signinRequest) (string, int64, error) {
	user, err := i.userRepo.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, users.ErrUserNotFound) {
		return "", 0, users.ErrInvalidCredentials
	}
	if err != nil {
		return "", 0, err
	}

	if err := i.hasher.Compare(user.Password, req.Password); err != nil {
		return "", 0, users.ErrInvalidCredentials
	}

	token, err := i.tokens.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", 0, err
	}

	return token, int64(i.tokens.AccessTokenTTL().Seconds()), nil
}

func writeSigninError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to encode sign-in error response: %v", err)
	}
}
