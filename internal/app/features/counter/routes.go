// internal/app/features/counter/routes.go
package counter

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /counter.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/increment", h.ServeIncrement)
	r.Post("/decrement", h.ServeDecrement)
	return r
}
