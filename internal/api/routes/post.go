package routes

import (
	postHandlers "Inkwell/internal/api/handlers/post"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the /api/posts endpoints.
// {id} segments are constrained to decimal digits, so non-numeric ids never
// match these routes. Mutations require authentication; the index and
// single-post reads are public.
func RegisterPostRoutes(r chi.Router, service posts.Service, authorizer *posts.Authorizer, authMiddleware *middleware.AuthMiddleware) {
	listHandler := postHandlers.NewListHandler(service)
	getHandler := postHandlers.NewGetHandler(service)
	myPostsHandler := postHandlers.NewMyPostsHandler(service)
	createHandler := postHandlers.NewCreateHandler(service)
	updateHandler := postHandlers.NewUpdateHandler(service, authorizer)
	deleteHandler := postHandlers.NewDeleteHandler(service, authorizer)

	r.Route("/api/posts", func(r chi.Router) {
		r.Get("/", listHandler.HandleList)
		r.With(authMiddleware.RequireAuth).Get("/my", myPostsHandler.HandleMyPosts)
		r.Get("/{id:[0-9]+}", getHandler.HandleGet)

		r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)
		r.With(authMiddleware.RequireAuth).Put("/update/{id:[0-9]+}", updateHandler.HandleUpdate)
		r.With(authMiddleware.RequireAuth).Patch("/update/{id:[0-9]+}", updateHandler.HandleUpdate)
		r.With(authMiddleware.RequireAuth).Delete("/{id:[0-9]+}", deleteHandler.HandleDelete)
	})
}
