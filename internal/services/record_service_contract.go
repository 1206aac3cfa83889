package services

import (
	"context"
	"iter"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
)

// RecordServiceContract is the clinical record store: patients, consultations and
// symptom analyses. All collections are append-only.
type RecordServiceContract interface {
	// AddPatient validates and registers a patient, returning its new id.
	AddPatient(ctx context.Context, req dtos.CreatePatientRequest) (string, error)
	// AddConsultation records a completed consultation for an existing patient.
	AddConsultation(ctx context.Context, patientID, consultationType, details string) (string, error)
	// AddSymptomAnalysis stores a triage result. An empty patientID is a no-op that
	// returns an empty id and no error.
	AddSymptomAnalysis(ctx context.Context, patientID, symptoms string, result entities.TriageResult) (string, error)
	// FindPatientsByQuery lazily yields patients whose name, id or email contains term.
	FindPatientsByQuery(ctx context.Context, term string, activeOnly bool) iter.Seq[entities.Patient]
	GetPatient(ctx context.Context, id string) (entities.Patient, error)
	ListConsultationsForPatient(ctx context.Context, id string) ([]entities.Consultation, error)
	// ListAnalysesForPatient returns the stored symptom analyses of a patient, oldest first.
	ListAnalysesForPatient(ctx context.Context, id string) ([]entities.SymptomAnalysis, error)
}
