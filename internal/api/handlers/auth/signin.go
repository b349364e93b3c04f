package auth

import (
	"net/http"
)

// SigninHandler is the placeholder behind POST /api/auth/signin.
// The route only exists in the routing table; the sign-in interceptor
// middleware answers the request before routing reaches this handler.
type SigninHandler struct{}

// NewSigninHandler creates the sign-in placeholder handler
func NewSigninHandler() *SigninHandler {
	return &SigninHandler{}
}

// HandleSignin must never execute. Reaching it means the sign-in
// interceptor is not mounted in front of the router, which is a deployment
// misconfiguration, so it fails loudly rather than degrading quietly.
func (h *SigninHandler) HandleSignin(_ http.ResponseWriter, _ *http.Request) {
	panic("signin route reached directly: authentication is handled by the " +
		"SigninInterceptor middleware; check that it is mounted on the router")
}
