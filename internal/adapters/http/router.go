// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	metadataHandler *handlers.MetadataHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Service banner and probes (outside /api prefix).
	r.Get("/", handlers.Root)
	r.Get("/health", healthHandler.Liveness)
	r.Get("/dbactive", healthHandler.DatabaseReadiness)

	r.Route("/api", func(r chi.Router) {
		// Todo CRUD.
		r.Get("/todos", todoHandler.ListTodos)
		r.Post("/todos", todoHandler.CreateTodo)
		r.Put("/todos/{id}", todoHandler.UpdateTodo)
		r.Delete("/todos/{id}", todoHandler.DeleteTodo)

		// Instance identity.
		r.Get("/metadata", metadataHandler.GetMetadata)
	})

	return r
}
