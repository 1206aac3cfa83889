package services

import (
	"context"
	"strings"

	"clinic-triage-service/internal/domain/dtos"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// TriageServiceImpl implements TriageServiceContract.
type TriageServiceImpl struct {
	analyzer Analyzer
	records  RecordServiceContract
	logger   zerolog.Logger
}

// NewTriageService wires the analyzer to the record store.
func NewTriageService(analyzer Analyzer, records RecordServiceContract, logger zerolog.Logger) TriageServiceContract {
	return &TriageServiceImpl{
		analyzer: analyzer,
		records:  records,
		logger:   logger.With().Str("service", "triage").Logger(),
	}
}

func (s *TriageServiceImpl) CheckSymptoms(ctx context.Context, req dtos.TriageRequest) (dtos.TriageResponse, error) {
	if err := req.Validate(); err != nil {
		return dtos.TriageResponse{}, err
	}

	requestID := uuid.NewString()
	log := s.logger.With().Str("request_id", requestID).Logger()

	history := strings.TrimSpace(req.MedicalHistory)
	patientID := strings.TrimSpace(req.PatientID)
	if patientID != "" {
		patient, err := s.records.GetPatient(ctx, patientID)
		if err != nil {
			return dtos.TriageResponse{}, err
		}
		if history == "" {
			history = patient.MedicalHistory
		}
	}

	log.Info().Str("patient_id", patientID).Str("severity", req.Severity).Msg("Running symptom triage")
	result := s.analyzer.Analyze(ctx, req.Symptoms, req.Duration, req.Severity, req.Age, history)
	if result.Failed() {
		log.Warn().Str("error", result.Error).Msg("Triage analysis degraded to fallback")
	}
	if len(result.EmergencyKeywords) > 0 {
		log.Warn().Strs("keywords", result.EmergencyKeywords).Msg("Emergency keywords reported")
	}

	analysisID, err := s.records.AddSymptomAnalysis(ctx, patientID, req.Symptoms, result)
	if err != nil {
		return dtos.TriageResponse{}, err
	}

	return dtos.TriageResponse{AnalysisID: analysisID, Result: result}, nil
}
