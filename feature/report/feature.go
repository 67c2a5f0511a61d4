package report

import (
	"corporate-web/feature/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature bundles the report service and handler for the loader.
type Feature struct {
	handler *Handler
}

// NewFeature creates the report feature over the persisted table store.
func NewFeature(st store.Store, logger *zap.Logger, latestRows int) *Feature {
	service := NewService(st, logger)
	return &Feature{handler: NewHandler(service, latestRows)}
}

// Name implements loader.Feature.
func (f *Feature) Name() string {
	return "report"
}

// IsEnabled implements loader.Feature. The report surface is always on;
// the serve command exists for nothing else.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load implements loader.Feature.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
