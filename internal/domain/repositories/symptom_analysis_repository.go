package repositories

import (
	"context"
	"sync"

	"clinic-triage-service/internal/domain/entities"
)

// InMemorySymptomAnalysisRepository stores symptom analyses in creation order.
type InMemorySymptomAnalysisRepository struct {
	mu       sync.RWMutex
	analyses []entities.SymptomAnalysis
}

func NewInMemorySymptomAnalysisRepository() *InMemorySymptomAnalysisRepository {
	return &InMemorySymptomAnalysisRepository{}
}

func (r *InMemorySymptomAnalysisRepository) Create(ctx context.Context, analysis entities.SymptomAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.analyses = append(r.analyses, analysis)
	return nil
}

func (r *InMemorySymptomAnalysisRepository) FindByPatientID(ctx context.Context, patientID string) ([]entities.SymptomAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.SymptomAnalysis, 0)
	for _, a := range r.analyses {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemorySymptomAnalysisRepository) ListAll(ctx context.Context) ([]entities.SymptomAnalysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.SymptomAnalysis, len(r.analyses))
	copy(out, r.analyses)
	return out, nil
}

func (r *InMemorySymptomAnalysisRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.analyses)
}
