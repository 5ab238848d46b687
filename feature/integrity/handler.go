package integrity

import (
	"rein-stock/core/logger"
	"rein-stock/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/cache", h.HandleCacheCheck)
	group.Get("/history", h.HandleHistoryCheck)
	group.Get("/mirror", h.HandleMirrorCheck)
	group.Get("/credentials", h.HandleCredentialsCheck)
}

// HandleIntegrityCheck runs all checks.
// @Summary Run All Integrity Checks
// @Description Checks the snapshot cache, the sync history table, the mirror bucket and the ERP credentials.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Failure 503 {object} Report "At least one check failed"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckAll(c.UserContext())
	if report.Status == checks.StatusError {
		l.Warn("Integrity check failed", zap.Any("checks", report.Checks))
		return c.Status(fiber.StatusServiceUnavailable).JSON(report)
	}
	return c.JSON(report)
}

// HandleCacheCheck checks the snapshot cache.
// @Summary Check Cache
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.Result "Cache Report"
// @Router /integrity/cache [get]
func (h *Handler) HandleCacheCheck(c *fiber.Ctx) error {
	return respond(c, h.service.CheckCache())
}

// HandleHistoryCheck checks the sync history schema.
// @Summary Check History Schema
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.Result "History Report"
// @Router /integrity/history [get]
func (h *Handler) HandleHistoryCheck(c *fiber.Ctx) error {
	return respond(c, h.service.CheckHistory())
}

// HandleMirrorCheck checks and optionally creates the mirror bucket.
// @Summary Check Mirror Bucket
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.Result "Mirror Report"
// @Router /integrity/mirror [get]
func (h *Handler) HandleMirrorCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.UserContext()

	result := h.service.CheckMirror(ctx)
	if len(result.Missing) > 0 && c.QueryBool("fix") {
		l.Info("Attempting to create mirror bucket")
		if err := h.service.FixMirror(ctx); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "Failed to create bucket",
				"details": err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "fixed", "fixed": result.Missing})
	}
	return respond(c, result)
}

// HandleCredentialsCheck checks the ERP settings.
// @Summary Check ERP Credentials
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.Result "Credentials Report"
// @Router /integrity/credentials [get]
func (h *Handler) HandleCredentialsCheck(c *fiber.Ctx) error {
	return respond(c, h.service.CheckCredentials())
}

func respond(c *fiber.Ctx, r checks.Result) error {
	if r.Status == checks.StatusError {
		return c.Status(fiber.StatusServiceUnavailable).JSON(r)
	}
	return c.JSON(r)
}
