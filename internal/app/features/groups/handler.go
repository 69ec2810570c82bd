// internal/app/features/groups/handler.go
package groups

import (
	"github.com/dalemusser/guildroster/internal/app/roster"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the groups feature. It
// holds the roster service and logger so the per-operation handlers (list,
// create, view, edit, delete, seed) share the same core dependencies.
type Handler struct {
	Svc *roster.Service
	Log *zap.Logger
}

// NewHandler constructs a groups Handler. It is typically called from the
// bootstrap BuildHandler function, where the roster service and logger are
// already initialized.
func NewHandler(svc *roster.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Svc: svc,
		Log: logger,
	}
}
