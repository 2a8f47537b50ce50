/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router and middleware stack and binds URLs to
  handlers. This is the wiring layer; handlers.go does the work.

MIDDLEWARE STACK:
  1. Logger:     request logging
  2. Recoverer:  panic recovery (500 instead of crash)
  3. RequestID:  unique ID per request for tracing
  4. CORS:       the HR frontend is served from another origin; the
                 converter accepts uploads from anywhere, like the service
                 it replaced

SECURITY NOTE:
  No authentication. The service runs on the office network only.
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates the router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/convert", h.Convert)
		r.Post("/preview", h.Preview)
		r.Get("/schedules", h.ListSchedules)
		r.Get("/health", h.Health)
	})

	return r
}
