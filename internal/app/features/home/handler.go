package home

import (
	"net/http"

	"go.uber.org/zap"
)

// LivenessText is the body of GET /.
const LivenessText = "Study Partner CRUD API is running"

// Handler serves the liveness root.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – liveness                                                            |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot answers without touching the database, so it reports the
// process as alive even while MongoDB is still connecting.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(LivenessText))
}
