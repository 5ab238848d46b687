package stock

import (
	"errors"

	"rein-stock/core/logger"
	"rein-stock/core/rein"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stock.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the stock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stock")
	group.Get("/", h.HandleListCached)
	group.Post("/sync", h.HandleSync)
	group.Get("/search", h.HandleSearch)
	group.Get("/history", h.HandleHistory)
}

// HandleListCached returns the cached stock list.
// @Summary List Cached Stock
// @Description Returns the last synchronized snapshot ordered by product name and SKU. Never calls the ERP.
// @Tags stock
// @Produce json
// @Success 200 {object} map[string]interface{} "Cached items"
// @Router /stock [get]
func (h *Handler) HandleListCached(c *fiber.Ctx) error {
	items := h.service.ListCached()
	return c.JSON(fiber.Map{
		"items": items,
		"total": len(items),
	})
}

// HandleSync runs a full synchronization.
// @Summary Synchronize Stock
// @Description Walks the whole ERP catalog, replaces the cached snapshot and returns the merged list with a diff summary.
// @Tags stock
// @Produce json
// @Success 200 {object} SyncResult "Sync result"
// @Failure 502 {object} map[string]interface{} "ERP request failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stock/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	result, err := h.service.SyncFull(c.UserContext())
	if err != nil {
		l.Error("Stock sync request failed", zap.Error(err))
		return upstreamError(c, err)
	}

	return c.JSON(result)
}

// HandleSearch searches products on the ERP.
// @Summary Search Stock
// @Description Looks up one page of products matching a term on the live ERP API and returns one row per variant, active products first.
// @Tags stock
// @Produce json
// @Param termo query string false "Search term"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size used to compute total_pages" default(10)
// @Param status query string false "ativos, inativos or todos" default(ativos)
// @Param sku_exato query bool false "Keep only variants whose SKU equals termo"
// @Success 200 {object} SearchResult "Search result"
// @Failure 502 {object} map[string]interface{} "ERP request failed"
// @Router /stock/search [get]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	result, err := h.service.Search(c.UserContext(), SearchQuery{
		Term:     c.Query("termo"),
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("per_page", DefaultSearchPerPage),
		Status:   c.Query("status", SearchActive),
		ExactSKU: c.QueryBool("sku_exato"),
	})
	if err != nil {
		l.Error("Stock search failed", zap.Error(err))
		return upstreamError(c, err)
	}

	return c.JSON(result)
}

// HandleHistory lists recent sync runs.
// @Summary Sync History
// @Description Returns the most recent synchronization attempts, newest first.
// @Tags stock
// @Produce json
// @Param limit query int false "Maximum runs to return" default(20)
// @Success 200 {array} SyncRun "Sync runs"
// @Failure 503 {object} map[string]string "History not configured"
// @Router /stock/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	runs, err := h.service.History(c.UserContext(), c.QueryInt("limit", defaultHistoryLimit))
	if errors.Is(err, ErrHistoryDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Sync history lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(runs)
}

func upstreamError(c *fiber.Ctx, err error) error {
	var httpErr *rein.HTTPError
	if errors.As(err, &httpErr) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":  err.Error(),
			"page":   httpErr.Page,
			"status": httpErr.Status,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
