package report

import (
	"strconv"

	"corporate-web/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the reporting surface.
type Handler struct {
	service    *Service
	latestRows int
}

// NewHandler creates a new HTTP handler. latestRows is the default row
// window for the latest-assets view.
func NewHandler(service *Service, latestRows int) *Handler {
	if latestRows <= 0 {
		latestRows = 15
	}
	return &Handler{service: service, latestRows: latestRows}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Get("/metrics", h.HandleMetrics)
	group.Get("/assets", h.HandleAssets)
	group.Get("/assets/latest", h.HandleLatestAssets)
}

// HandleMetrics returns the dashboard aggregates.
// @Summary Dashboard Metrics
// @Description Returns total assets, total reinvested assets, and total transferable revenue.
// @Tags report
// @Accept json
// @Produce json
// @Success 200 {object} report.Metrics "Aggregates"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/metrics [get]
func (h *Handler) HandleMetrics(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	metrics, err := h.service.Metrics(c.Context())
	if err != nil {
		l.Error("Metrics computation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(metrics)
}

// HandleAssets returns the full asset table.
// @Summary List Assets
// @Description Returns every asset row in insertion order.
// @Tags report
// @Accept json
// @Produce json
// @Success 200 {array} models.Asset "Asset rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/assets [get]
func (h *Handler) HandleAssets(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	rows, err := h.service.All(c.Context())
	if err != nil {
		l.Error("Asset listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}

// HandleLatestAssets returns the most recent asset rows.
// @Summary Latest Assets
// @Description Returns the most recent N asset rows (default 15).
// @Tags report
// @Accept json
// @Produce json
// @Param n query int false "Number of rows"
// @Success 200 {array} models.Asset "Asset rows"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/assets/latest [get]
func (h *Handler) HandleLatestAssets(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	n := h.latestRows
	if raw := c.Query("n"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			n = parsed
		}
	}

	rows, err := h.service.Latest(c.Context(), n)
	if err != nil {
		l.Error("Latest asset listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rows)
}
