// internal/app/features/assignments/handler.go
package assignments

import (
	"github.com/dalemusser/guildroster/internal/app/roster"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the assignment engine
// endpoints.
type Handler struct {
	Svc *roster.Service
	Log *zap.Logger
}

// NewHandler constructs an assignments Handler.
func NewHandler(svc *roster.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: svc,
		Log: logger,
	}
}
