package services

import (
	"context"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
)

// Analyzer produces a triage result for a set of symptoms. Implementations must not
// fail: service errors are reported inside the returned result.
type Analyzer interface {
	Analyze(ctx context.Context, symptoms, duration, severity string, age int, medicalHistory string) entities.TriageResult
}

// TriageServiceContract runs the symptom checker end to end.
type TriageServiceContract interface {
	// CheckSymptoms validates the request, runs the analysis and stores it when the
	// request is bound to a registered patient. Only validation and unknown-patient
	// errors are returned; analysis failures are part of the response.
	CheckSymptoms(ctx context.Context, req dtos.TriageRequest) (dtos.TriageResponse, error)
}
