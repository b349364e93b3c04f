package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// Context keys for storing the authenticated identity
type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware enforces bearer-token authentication for protected routes.
// Validates HS256 access tokens from the Authorization header and injects
// the authenticated identity into the request context.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth ensures the request carries a valid access token.
// If not authenticated, returns 401. If authenticated, injects the
// identity into the context for handlers to read.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := m.authenticate(r)
		if !ok {
			writeAuthError(w, "Authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

// OptionalAuth loads the identity if a valid token is present but lets
// anonymous requests through. Useful for endpoints that serve both.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := m.authenticate(r); ok {
			r = r.WithContext(withIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) authenticate(r *http.Request) (*users.Identity, bool) {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		log.Printf("[AUTH_FAILURE] ip=%s method=%s path=%s error=%v",
			r.RemoteAddr, r.Method, r.URL.Path, err)
		return nil, false
	}
	if claims.UserID == 0 {
		return nil, false
	}

	return &users.Identity{ID: claims.UserID, Email: claims.Email}, true
}

func withIdentity(ctx context.Context, identity *users.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity extracts the authenticated identity from the request context.
// Returns nil if not authenticated.
func GetIdentity(r *http.Request) *users.Identity {
	identity, _ := r.Context().Value(identityKey).(*users.Identity)
	return identity
}

// SetTestIdentity sets the identity in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestIdentity(ctx context.Context, identity *users.Identity) context.Context {
	return withIdentity(ctx, identity)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
