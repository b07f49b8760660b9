// internal/app/features/partners/handler.go
package partners

import (
	errorsfeature "github.com/dalemusser/studymate/internal/app/features/errors"
	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"go.uber.org/zap"
)

// Handler serves the partner profile endpoints.
type Handler struct {
	Gate   *dbgate.Gate
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a partners Handler.
func NewHandler(gate *dbgate.Gate, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gate:   gate,
		ErrLog: errLog,
		Log:    logger,
	}
}
