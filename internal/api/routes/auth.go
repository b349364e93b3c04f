package routes

import (
	authHandlers "Inkwell/internal/api/handlers/auth"
	"Inkwell/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterAuthRoutes registers the /api/auth endpoints.
// POST /signin is declared only so the routing table is complete; the
// sign-in interceptor middleware answers it before the placeholder runs.
func RegisterAuthRoutes(r chi.Router, registration users.RegistrationService) {
	signupHandler := authHandlers.NewSignupHandler(registration)
	signinHandler := authHandlers.NewSigninHandler()

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", signupHandler.HandleSignup)
		r.Post("/signin", signinHandler.HandleSignin)
	})
}
