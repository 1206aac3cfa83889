package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"clinic-triage-service/internal/domain"
	"clinic-triage-service/internal/domain/entities"
)

// InMemoryPatientRepository keeps patients in insertion order with an id index.
type InMemoryPatientRepository struct {
	mu       sync.RWMutex
	patients []entities.Patient
	byID     map[string]int
}

// NewInMemoryPatientRepository creates an empty patient collection.
func NewInMemoryPatientRepository() *InMemoryPatientRepository {
	return &InMemoryPatientRepository{byID: make(map[string]int)}
}

func (r *InMemoryPatientRepository) Create(ctx context.Context, patient entities.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[patient.ID]; exists {
		return fmt.Errorf("patient %q already exists", patient.ID)
	}
	r.byID[patient.ID] = len(r.patients)
	r.patients = append(r.patients, patient)
	return nil
}

func (r *InMemoryPatientRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return entities.Patient{}, domain.NewNotFoundError("patient", id)
	}
	return r.patients[idx], nil
}

func (r *InMemoryPatientRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return domain.NewNotFoundError("patient", id)
	}
	r.patients[idx].LastActive = entities.StartOfDay(at)
	return nil
}

// ListAll returns a copy of the collection; callers may not mutate the store through it.
func (r *InMemoryPatientRepository) ListAll(ctx context.Context) ([]entities.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Patient, len(r.patients))
	copy(out, r.patients)
	return out, nil
}

func (r *InMemoryPatientRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patients)
}
