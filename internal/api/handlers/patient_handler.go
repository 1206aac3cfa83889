package handlers

import (
	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
	"clinic-triage-service/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type PatientHandler struct {
	records services.RecordServiceContract
	logger  zerolog.Logger
}

func NewPatientHandler(records services.RecordServiceContract, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{
		records: records,
		logger:  logger.With().Str("handler", "patients").Logger(),
	}
}

func (h *PatientHandler) RegisterPatient(c *fiber.Ctx) error {
	var req dtos.CreatePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadBody(c, err)
	}

	id, err := h.records.AddPatient(c.UserContext(), req)
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.CreatedResponse{ID: id})
}

// SearchPatients answers GET /patients?q=<term>&active=<bool>.
func (h *PatientHandler) SearchPatients(c *fiber.Ctx) error {
	patients := make([]entities.Patient, 0)
	for p := range h.records.FindPatientsByQuery(c.UserContext(), c.Query("q"), c.QueryBool("active", false)) {
		patients = append(patients, p)
	}
	return c.JSON(patients)
}

func (h *PatientHandler) GetPatient(c *fiber.Ctx) error {
	patient, err := h.records.GetPatient(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(patient)
}

func (h *PatientHandler) ListConsultations(c *fiber.Ctx) error {
	consultations, err := h.records.ListConsultationsForPatient(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(consultations)
}

func (h *PatientHandler) ListAnalyses(c *fiber.Ctx) error {
	analyses, err := h.records.ListAnalysesForPatient(c.UserContext(), c.Params("id"))
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.JSON(analyses)
}

func (h *PatientHandler) AddConsultation(c *fiber.Ctx) error {
	var req dtos.CreateConsultationRequest
	if err := c.BodyParser(&req); err != nil {
		return sendBadBody(c, err)
	}

	id, err := h.records.AddConsultation(c.UserContext(), req.PatientID, req.Type, req.Details)
	if err != nil {
		return sendError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dtos.CreatedResponse{ID: id})
}

func RegisterPatientRoutes(app *fiber.App, ph *PatientHandler) {
	patients := app.Group("/patients")
	patients.Post("/", ph.RegisterPatient)
	patients.Get("/", ph.SearchPatients)
	patients.Get("/:id", ph.GetPatient)
	patients.Get("/:id/consultations", ph.ListConsultations)
	patients.Get("/:id/analyses", ph.ListAnalyses)

	app.Post("/consultations", ph.AddConsultation)
}
