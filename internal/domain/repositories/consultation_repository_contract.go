package repositories

import (
	"context"

	"clinic-triage-service/internal/domain/entities"
)

// ConsultationRepositoryContract is the append-only consultation collection.
type ConsultationRepositoryContract interface {
	Create(ctx context.Context, consultation entities.Consultation) error
	FindByPatientID(ctx context.Context, patientID string) ([]entities.Consultation, error)
	ListAll(ctx context.Context) ([]entities.Consultation, error)
	Count(ctx context.Context) int
}
