package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/devconf/devconf/internal/store"
)

// NewRouter creates the HTTP router with all configuration endpoints.
func NewRouter(s *store.Store) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(JSONContentType)

	h := NewHandler(s)

	r.Route("/api/configuration", func(r chi.Router) {
		r.Get("/", h.GetConfiguration)

		// The static /bulk route takes precedence over the {path} param.
		r.Put("/bulk", h.BulkUpdate)

		r.Get("/{path}", h.GetByPath)
		r.Put("/{path}", h.UpdateValue)
	})

	return r
}
