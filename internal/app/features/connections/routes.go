// internal/app/features/connections/routes.go
package connections

import "github.com/go-chi/chi/v5"

// Routes returns the router mounted at /my-connections.
//
// All three routes share one path parameter: GET reads it as the
// requester's email, PUT and DELETE as the request ID.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{key}", h.ListMine)
	r.Put("/{key}", h.Update)
	r.Delete("/{key}", h.Delete)
	return r
}
