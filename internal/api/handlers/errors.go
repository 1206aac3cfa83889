package handlers

import (
	"errors"

	"clinic-triage-service/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeResourceNotFound = "RESOURCE_NOT_FOUND"
	CodeBadRequest       = "BAD_REQUEST"
	CodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON envelope for every error answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
}

// sendError maps domain errors onto HTTP status codes.
func sendError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var ve *domain.ValidationError
	var nf *domain.NotFoundError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Validation failed",
			Message: ve.Error(),
			Code:    CodeValidationError,
			Field:   ve.Field,
		})
	case errors.As(err, &nf):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error:   "Resource not found",
			Message: nf.Error(),
			Code:    CodeResourceNotFound,
		})
	default:
		logger.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Internal error",
			Message: err.Error(),
			Code:    CodeInternalError,
		})
	}
}

func sendBadBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error:   "Could not parse request body",
		Message: err.Error(),
		Code:    CodeBadRequest,
	})
}
