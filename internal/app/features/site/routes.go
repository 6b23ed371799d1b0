// internal/app/features/site/routes.go
package site

import "github.com/go-chi/chi/v5"

// Routes serves every GET path through ServePage, so the route table in
// package route is the single source of which pages exist. Every request
// carries the visitor's view state.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(h.Sessions.LoadState)
	r.Get("/*", h.ServePage)
	return r
}
