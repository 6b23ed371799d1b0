// internal/app/features/secret/routes.go
package secret

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /secret.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeToggle)
	return r
}
