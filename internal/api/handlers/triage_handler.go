package handlers

import (
	"context"
	"time"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type TriageHandler struct {
	triage  services.TriageServiceContract
	timeout time.Duration
	logger  zerolog.Logger
}

// NewTriageHandler creates the symptom checker handler. timeout bounds one analysis.
func NewTriageHandler(triage services.TriageServiceContract, timeout time.Duration, logger zerolog.Logger) *TriageHandler {
	return &TriageHandler{
		triage:  triage,
		timeout: timeout,
		logger:  logger.With().Str("handler", "triage").Logger(),
	}
}

// CheckSymptoms always answers 200 once the request is accepted; a failed analysis is
// reported in result.error.
func (h *TriageHandler) CheckSymptoms(c *fiber.Ctx) error {
	var req dtos.TriageRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadBody(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()

	resp, err := h.triage.CheckSymptoms(ctx, req)
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(resp)
}

func RegisterTriageRoutes(app *fiber.App, th *TriageHandler) {
	app.Post("/triage", th.CheckSymptoms)
}
