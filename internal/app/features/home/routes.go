package home

import "github.com/go-chi/chi/v5"

// Routes returns the router mounted at /.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	return r
}
