package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"clinic-triage-service/internal/adapters"
	"clinic-triage-service/internal/domain/entities"
	"clinic-triage-service/internal/domain/repositories"

	"github.com/rs/zerolog"
)

// --- MockPatientRepository ---
// Compile-time check to ensure MockPatientRepository implements PatientRepositoryContract
var _ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc          func(ctx context.Context, patient entities.Patient) error
	GetByIDFunc         func(ctx context.Context, id string) (entities.Patient, error)
	TouchLastActiveFunc func(ctx context.Context, id string, at time.Time) error
	ListAllFunc         func(ctx context.Context) ([]entities.Patient, error)

	CreateFuncCallCount  int32
	ListAllFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, patient entities.Patient) error {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return entities.Patient{}, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	if m.TouchLastActiveFunc != nil {
		return m.TouchLastActiveFunc(ctx, id, at)
	}
	return nil
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]entities.Patient, error) {
	atomic.AddInt32(&m.ListAllFuncCallCount, 1)
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockPatientRepository) Count(ctx context.Context) int {
	patients, _ := m.ListAll(ctx)
	return len(patients)
}

// --- MockAnalyzer ---
var _ Analyzer = (*MockAnalyzer)(nil)

type analyzeCall struct {
	Symptoms, Duration, Severity string
	Age                          int
	MedicalHistory               string
}

// MockAnalyzer records its calls and returns Result (or the output of AnalyzeFunc).
type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, symptoms, duration, severity string, age int, medicalHistory string) entities.TriageResult
	Result      entities.TriageResult

	mu    sync.Mutex
	Calls []analyzeCall
}

func (m *MockAnalyzer) Analyze(ctx context.Context, symptoms, duration, severity string, age int, medicalHistory string) entities.TriageResult {
	m.mu.Lock()
	m.Calls = append(m.Calls, analyzeCall{symptoms, duration, severity, age, medicalHistory})
	m.mu.Unlock()
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, symptoms, duration, severity, age, medicalHistory)
	}
	return m.Result
}

// --- MockQueueAdapter ---
var _ adapters.QueueAdapter = (*MockQueueAdapter)(nil)

type MockQueueAdapter struct {
	PublishFunc        func(ctx context.Context, queueName string, jobData []byte) error
	StartConsumingFunc func(ctx context.Context, queueName string, handler adapters.JobHandler) error

	PublishedMessages map[string][][]byte
	Handlers          map[string]adapters.JobHandler
	StoppedQueues     []string
	mu                sync.Mutex
}

func NewMockQueueAdapter() *MockQueueAdapter {
	return &MockQueueAdapter{
		PublishedMessages: make(map[string][][]byte),
		Handlers:          make(map[string]adapters.JobHandler),
	}
}

func (m *MockQueueAdapter) Publish(ctx context.Context, queueName string, jobData []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, queueName, jobData)
	}
	m.PublishedMessages[queueName] = append(m.PublishedMessages[queueName], jobData)
	return nil
}

func (m *MockQueueAdapter) StartConsuming(ctx context.Context, queueName string, handler adapters.JobHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StartConsumingFunc != nil {
		return m.StartConsumingFunc(ctx, queueName, handler)
	}
	m.Handlers[queueName] = handler
	return nil
}

func (m *MockQueueAdapter) StopConsuming(ctx context.Context, queueName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StoppedQueues = append(m.StoppedQueues, queueName)
	delete(m.Handlers, queueName)
	return nil
}

func (m *MockQueueAdapter) Close(ctx context.Context) error {
	return nil
}

// --- helpers ---

// fixedClock returns a clock that always reports t.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

type testStore struct {
	patients      *repositories.InMemoryPatientRepository
	consultations *repositories.InMemoryConsultationRepository
	analyses      *repositories.InMemorySymptomAnalysisRepository
	records       *RecordServiceImpl
	analytics     *AnalyticsServiceImpl
}

// newTestStore builds a record store and analytics over shared in-memory collections,
// both driven by now.
func newTestStore(now func() time.Time) *testStore {
	s := &testStore{
		patients:      repositories.NewInMemoryPatientRepository(),
		consultations: repositories.NewInMemoryConsultationRepository(),
		analyses:      repositories.NewInMemorySymptomAnalysisRepository(),
	}
	s.records = NewRecordService(s.patients, s.consultations, s.analyses, zerolog.Nop()).(*RecordServiceImpl)
	s.records.now = now
	s.analytics = NewAnalyticsService(s.patients, s.consultations, s.analyses, zerolog.Nop()).(*AnalyticsServiceImpl)
	s.analytics.now = now
	return s
}
