// internal/app/features/members/handler.go
package members

import (
	"github.com/dalemusser/guildroster/internal/app/roster"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the member directory
// feature.
type Handler struct {
	Svc *roster.Service
	Log *zap.Logger
}

// NewHandler constructs a members Handler.
func NewHandler(svc *roster.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: svc,
		Log: logger,
	}
}
