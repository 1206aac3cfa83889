package repositories

import (
	"context"
	"sync"

	"clinic-triage-service/internal/domain/entities"
)

// InMemoryConsultationRepository stores consultations in creation order.
type InMemoryConsultationRepository struct {
	mu            sync.RWMutex
	consultations []entities.Consultation
}

func NewInMemoryConsultationRepository() *InMemoryConsultationRepository {
	return &InMemoryConsultationRepository{}
}

func (r *InMemoryConsultationRepository) Create(ctx context.Context, consultation entities.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.consultations = append(r.consultations, consultation)
	return nil
}

func (r *InMemoryConsultationRepository) FindByPatientID(ctx context.Context, patientID string) ([]entities.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Consultation, 0)
	for _, c := range r.consultations {
		if c.PatientID == patientID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *InMemoryConsultationRepository) ListAll(ctx context.Context) ([]entities.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Consultation, len(r.consultations))
	copy(out, r.consultations)
	return out, nil
}

func (r *InMemoryConsultationRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.consultations)
}
