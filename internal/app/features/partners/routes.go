// internal/app/features/partners/routes.go
package partners

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns the router mounted at /partners. sendRequest serves
// POST /partners/{id}/request; it belongs to the connections feature but
// lives under this path.
func Routes(h *Handler, sendRequest http.HandlerFunc) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/request", sendRequest)
	return r
}

// MineRoutes returns the router mounted at /my-partners.
func MineRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{email}", h.ListMine)
	return r
}
