package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes mounts the four resource groups under /api. Read endpoints
// run with optional authentication so visibility checks can see the actor;
// mutating endpoints require a valid token.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers, am authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", handlers.authHandler.register())
			r.Post("/login", handlers.authHandler.login())
		})

		r.Route("/projects", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(am.optional)
				r.Get("/", handlers.projectHandler.getPublicProjects())
				r.Get("/{projectID}", handlers.projectHandler.getProject())
			})
			r.Group(func(r chi.Router) {
				r.Use(am.require)
				r.Post("/", handlers.projectHandler.createProject())
				r.Put("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})
		})

		r.Route("/images", func(r chi.Router) {
			r.With(am.optional).Get("/{projectID}", handlers.imageHandler.getProjectImages())
			r.Group(func(r chi.Router) {
				r.Use(am.require)
				r.Post("/{projectID}", handlers.imageHandler.uploadImage())
				r.Delete("/{projectID}/{imageID}", handlers.imageHandler.deleteImage())
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.With(am.optional).Get("/{projectID}", handlers.commentHandler.getProjectComments())
			r.Group(func(r chi.Router) {
				r.Use(am.require)
				r.Post("/{projectID}", handlers.commentHandler.createComment())
				r.Delete("/{projectID}/{commentID}", handlers.commentHandler.deleteComment())
			})
		})
	})
}
