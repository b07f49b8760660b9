// internal/app/features/errors/errorlog.go
package errors

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/studymate/internal/app/system/apierr"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Body is the JSON shape of every error response.
type Body struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Ref     string `json:"ref"`
}

// ErrorLogger turns handler errors into JSON responses and logs the detail
// that is kept out of the response.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// Write classifies err, logs it under a fresh reference ID, and writes the
// status and JSON body. fallback is the client message used when err is not
// already classified.
func (l *ErrorLogger) Write(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	ae := apierr.Classify(err, fallback)
	ref := uuid.NewString()

	fields := []zap.Field{
		zap.String("ref", ref),
		zap.String("kind", ae.Kind.Code()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	}
	if ae.Kind.Status() >= http.StatusInternalServerError {
		l.Log.Error(ae.Message, fields...)
	} else {
		l.Log.Warn(ae.Message, fields...)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ae.Kind.Status())
	_ = json.NewEncoder(w).Encode(Body{
		Message: ae.Message,
		Error:   ae.Kind.Code(),
		Ref:     ref,
	})
}

// RouteNotFound answers requests for paths no router matched, so unknown
// routes get the same JSON error shape as everything else.
func (l *ErrorLogger) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	l.Write(w, r, apierr.New(apierr.NotFound, "Route not found", nil), "")
}
