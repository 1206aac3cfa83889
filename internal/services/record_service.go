package services

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
	"clinic-triage-service/internal/domain/repositories"
	"clinic-triage-service/internal/identity"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
)

// RecordServiceImpl implements RecordServiceContract on top of the repositories.
// It owns the identifier allocator for the three collections.
type RecordServiceImpl struct {
	patientRepo      repositories.PatientRepositoryContract
	consultationRepo repositories.ConsultationRepositoryContract
	analysisRepo     repositories.SymptomAnalysisRepositoryContract
	ids              *identity.Allocator
	logger           zerolog.Logger
	now              func() time.Time
}

// NewRecordService creates a new record store over the given collections.
func NewRecordService(
	patientRepo repositories.PatientRepositoryContract,
	consultationRepo repositories.ConsultationRepositoryContract,
	analysisRepo repositories.SymptomAnalysisRepositoryContract,
	logger zerolog.Logger,
) RecordServiceContract {
	return &RecordServiceImpl{
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		analysisRepo:     analysisRepo,
		ids:              identity.NewAllocator(),
		logger:           logger.With().Str("service", "records").Logger(),
		now:              time.Now,
	}
}

func (s *RecordServiceImpl) AddPatient(ctx context.Context, req dtos.CreatePatientRequest) (string, error) {
	if err := req.Validate(); err != nil {
		s.logger.Debug().Err(err).Msg("Rejected patient registration")
		return "", err
	}
	gender := dtos.NormalizeGender(req.Gender)

	now := s.now()
	patient := entities.Patient{
		ID:               s.ids.Next(identity.PatientPrefix),
		FullName:         strings.TrimSpace(req.FullName),
		Age:              req.Age,
		Gender:           gender,
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Location:         strings.TrimSpace(req.Location),
		EmergencyContact: strings.TrimSpace(req.EmergencyContact),
		MedicalHistory:   strings.TrimSpace(req.MedicalHistory),
		RegistrationDate: now,
		LastActive:       entities.StartOfDay(now),
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return "", fmt.Errorf("failed to store patient: %w", err)
	}

	s.logger.Info().Str("patient_id", patient.ID).Msg("Patient registered")
	return patient.ID, nil
}

func (s *RecordServiceImpl) AddConsultation(ctx context.Context, patientID, consultationType, details string) (string, error) {
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return "", err
	}

	now := s.now()
	consultation := entities.Consultation{
		ID:        s.ids.Next(identity.ConsultationPrefix),
		PatientID: patientID,
		Type:      strings.TrimSpace(consultationType),
		Details:   details,
		Timestamp: now,
		Status:    entities.ConsultationCompleted,
	}
	if err := s.consultationRepo.Create(ctx, consultation); err != nil {
		return "", fmt.Errorf("failed to store consultation: %w", err)
	}
	if err := s.patientRepo.TouchLastActive(ctx, patientID, now); err != nil {
		return "", err
	}

	s.logger.Info().Str("consultation_id", consultation.ID).Str("patient_id", patientID).Msg("Consultation recorded")
	return consultation.ID, nil
}

func (s *RecordServiceImpl) AddSymptomAnalysis(ctx context.Context, patientID, symptoms string, result entities.TriageResult) (string, error) {
	if strings.TrimSpace(patientID) == "" {
		// guest triage, nothing to persist
		return "", nil
	}
	if _, err := s.patientRepo.GetByID(ctx, patientID); err != nil {
		return "", err
	}

	now := s.now()
	analysis := entities.SymptomAnalysis{
		ID:        s.ids.Next(identity.SymptomAnalysisPrefix),
		PatientID: patientID,
		Symptoms:  symptoms,
		Result:    result,
		Timestamp: now,
	}
	if err := s.analysisRepo.Create(ctx, analysis); err != nil {
		return "", fmt.Errorf("failed to store symptom analysis: %w", err)
	}
	if err := s.patientRepo.TouchLastActive(ctx, patientID, now); err != nil {
		return "", err
	}

	s.logger.Info().Str("analysis_id", analysis.ID).Str("patient_id", patientID).Bool("failed", result.Failed()).Msg("Symptom analysis recorded")
	return analysis.ID, nil
}

func (s *RecordServiceImpl) FindPatientsByQuery(ctx context.Context, term string, activeOnly bool) iter.Seq[entities.Patient] {
	snapshot, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list patients for search")
	}
	today := s.now()

	return func(yield func(entities.Patient) bool) {
		// a Caser keeps state, so each iteration gets its own
		fold := cases.Fold()
		needle := fold.String(strings.TrimSpace(term))
		for _, p := range snapshot {
			if activeOnly && !p.ActiveOn(today) {
				continue
			}
			if needle != "" && !matchesPatient(fold, p, needle) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func matchesPatient(fold cases.Caser, p entities.Patient, needle string) bool {
	return strings.Contains(fold.String(p.FullName), needle) ||
		strings.Contains(fold.String(p.ID), needle) ||
		strings.Contains(fold.String(p.Email), needle)
}

func (s *RecordServiceImpl) GetPatient(ctx context.Context, id string) (entities.Patient, error) {
	return s.patientRepo.GetByID(ctx, id)
}

func (s *RecordServiceImpl) ListConsultationsForPatient(ctx context.Context, id string) ([]entities.Consultation, error) {
	if _, err := s.patientRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.consultationRepo.FindByPatientID(ctx, id)
}

func (s *RecordServiceImpl) ListAnalysesForPatient(ctx context.Context, id string) ([]entities.SymptomAnalysis, error) {
	if _, err := s.patientRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.analysisRepo.FindByPatientID(ctx, id)
}
