package repositories

import (
	"context"

	"clinic-triage-service/internal/domain/entities"
)

// SymptomAnalysisRepositoryContract is the append-only symptom analysis collection.
type SymptomAnalysisRepositoryContract interface {
	Create(ctx context.Context, analysis entities.SymptomAnalysis) error
	FindByPatientID(ctx context.Context, patientID string) ([]entities.SymptomAnalysis, error)
	ListAll(ctx context.Context) ([]entities.SymptomAnalysis, error)
	Count(ctx context.Context) int
}
