// internal/app/features/parties/handler.go
package parties

import (
	"github.com/dalemusser/guildroster/internal/app/roster"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the parties feature.
type Handler struct {
	Svc *roster.Service
	Log *zap.Logger
}

// NewHandler constructs a parties Handler.
func NewHandler(svc *roster.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: svc,
		Log: logger,
	}
}
