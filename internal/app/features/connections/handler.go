// internal/app/features/connections/handler.go
package connections

import (
	errorsfeature "github.com/dalemusser/studymate/internal/app/features/errors"
	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"go.uber.org/zap"
)

// Handler serves partner requests ("connections").
type Handler struct {
	Gate   *dbgate.Gate
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a connections Handler.
func NewHandler(gate *dbgate.Gate, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gate:   gate,
		ErrLog: errLog,
		Log:    logger,
	}
}
