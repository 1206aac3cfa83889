package handlers

import (
	"strconv"

	"clinic-triage-service/internal/domain"
	"clinic-triage-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type AnalyticsHandler struct {
	analytics   services.AnalyticsServiceContract
	defaultDays int
	logger      zerolog.Logger
}

func NewAnalyticsHandler(analytics services.AnalyticsServiceContract, defaultDays int, logger zerolog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics:   analytics,
		defaultDays: defaultDays,
		logger:      logger.With().Str("handler", "analytics").Logger(),
	}
}

func (h *AnalyticsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.analytics.PatientStats(c.UserContext())
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(stats)
}

// Trends answers GET /analytics/trends?days=<n>. A missing days uses the configured window.
func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	days := h.defaultDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return sendError(c, h.logger, domain.NewValidationError("days", "must be an integer"))
		}
		days = n
	}

	points, err := h.analytics.ConsultationTrends(c.UserContext(), days)
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(points)
}

func (h *AnalyticsHandler) ConsultationTypes(c *fiber.Ctx) error {
	breakdown, err := h.analytics.ConsultationTypeBreakdown(c.UserContext())
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(breakdown)
}

func (h *AnalyticsHandler) Ages(c *fiber.Ctx) error {
	buckets, err := h.analytics.AgeDistribution(c.UserContext())
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(buckets)
}

func (h *AnalyticsHandler) Genders(c *fiber.Ctx) error {
	dist, err := h.analytics.GenderDistribution(c.UserContext())
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(dist)
}

func RegisterAnalyticsRoutes(app *fiber.App, ah *AnalyticsHandler) {
	analytics := app.Group("/analytics")
	analytics.Get("/stats", ah.Stats)
	analytics.Get("/trends", ah.Trends)
	analytics.Get("/consultation-types", ah.ConsultationTypes)
	analytics.Get("/ages", ah.Ages)
	analytics.Get("/genders", ah.Genders)
}
