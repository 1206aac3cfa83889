package handlers

import (
	"context"
	"time"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type TransferHandler struct {
	transferService services.TransferServiceContract
	logger          zerolog.Logger
}

func NewTransferHandler(ts services.TransferServiceContract, logger zerolog.Logger) *TransferHandler {
	return &TransferHandler{
		transferService: ts,
		logger:          logger.With().Str("handler", "transfer").Logger(),
	}
}

func (h *TransferHandler) InitiateExport(c *fiber.Ctx) error {
	var req dtos.InitiateTransferRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadBody(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	exportID, err := h.transferService.InitiateExport(ctx, req)
	if err != nil {
		return sendError(c, h.logger, err)
	}

	// 202: the export completes asynchronously on the queue
	return c.Status(fiber.StatusAccepted).JSON(dtos.ExportStatusResponse{
		TransferProgress: dtos.TransferProgress{
			TransferID: exportID,
			Status:     dtos.ExportPending,
			Message:    "Export queued.",
		},
		PatientID: req.PatientID,
	})
}

func (h *TransferHandler) ExportStatus(c *fiber.Ctx) error {
	status, err := h.transferService.ExportStatus(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(status)
}

func RegisterTransferRoutes(app *fiber.App, th *TransferHandler) {
	transferGroup := app.Group("/transfer")
	transferGroup.Post("/export", th.InitiateExport)
	transferGroup.Get("/export/:id", th.ExportStatus)
}
