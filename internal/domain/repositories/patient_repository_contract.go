package repositories

import (
	"context"
	"time"

	"clinic-triage-service/internal/domain/entities"
)

// PatientRepositoryContract is the append-only patient collection.
type PatientRepositoryContract interface {
	Create(ctx context.Context, patient entities.Patient) error
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	// TouchLastActive sets the patient's LastActive to the day containing at.
	TouchLastActive(ctx context.Context, id string, at time.Time) error
	ListAll(ctx context.Context) ([]entities.Patient, error)
	Count(ctx context.Context) int
}
