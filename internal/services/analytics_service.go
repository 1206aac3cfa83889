package services

import (
	"context"
	"fmt"
	"time"

	"clinic-triage-service/internal/domain"
	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
	"clinic-triage-service/internal/domain/repositories"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

const (
	dayLayout      = "2006-01-02"
	ageBucketWidth = 10
)

// AnalyticsServiceImpl implements AnalyticsServiceContract.
type AnalyticsServiceImpl struct {
	patientRepo      repositories.PatientRepositoryContract
	consultationRepo repositories.ConsultationRepositoryContract
	analysisRepo     repositories.SymptomAnalysisRepositoryContract
	logger           zerolog.Logger
	now              func() time.Time
}

// NewAnalyticsService creates an aggregator reading the same collections as the record store.
func NewAnalyticsService(
	patientRepo repositories.PatientRepositoryContract,
	consultationRepo repositories.ConsultationRepositoryContract,
	analysisRepo repositories.SymptomAnalysisRepositoryContract,
	logger zerolog.Logger,
) AnalyticsServiceContract {
	return &AnalyticsServiceImpl{
		patientRepo:      patientRepo,
		consultationRepo: consultationRepo,
		analysisRepo:     analysisRepo,
		logger:           logger.With().Str("service", "analytics").Logger(),
		now:              time.Now,
	}
}

func (s *AnalyticsServiceImpl) PatientStats(ctx context.Context) (dtos.PatientStats, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return dtos.PatientStats{}, fmt.Errorf("failed to list patients: %w", err)
	}

	today := s.now()
	active := 0
	for _, p := range patients {
		if p.ActiveOn(today) {
			active++
		}
	}

	return dtos.PatientStats{
		TotalPatients:      len(patients),
		ActiveToday:        active,
		TotalConsultations: s.consultationRepo.Count(ctx),
		TotalAnalyses:      s.analysisRepo.Count(ctx),
	}, nil
}

func (s *AnalyticsServiceImpl) ConsultationTrends(ctx context.Context, windowDays int) ([]dtos.TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	if windowDays > MaxTrendWindowDays {
		return nil, domain.NewValidationError("days", fmt.Sprintf("must be at most %d", MaxTrendWindowDays))
	}

	consultations, err := s.consultationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	analyses, err := s.analysisRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list symptom analyses: %w", err)
	}

	now := s.now()
	loc := now.Location()
	consultationsByDay := make(map[string]int)
	for _, c := range consultations {
		consultationsByDay[c.Timestamp.In(loc).Format(dayLayout)]++
	}
	analysesByDay := make(map[string]int)
	for _, a := range analyses {
		analysesByDay[a.Timestamp.In(loc).Format(dayLayout)]++
	}

	today := entities.StartOfDay(now)
	points := make([]dtos.TrendPoint, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(dayLayout)
		points = append(points, dtos.TrendPoint{
			Date:              day,
			ConsultationCount: consultationsByDay[day],
			AnalysisCount:     analysesByDay[day],
		})
	}
	return points, nil
}

func (s *AnalyticsServiceImpl) ConsultationTypeBreakdown(ctx context.Context) (map[string]int, error) {
	consultations, err := s.consultationRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}

	breakdown := make(map[string]int)
	for _, c := range consultations {
		breakdown[c.Type]++
	}
	return breakdown, nil
}

func (s *AnalyticsServiceImpl) AgeDistribution(ctx context.Context) ([]dtos.AgeBucket, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	byMin := make(map[int]int)
	for _, p := range patients {
		byMin[(p.Age/ageBucketWidth)*ageBucketWidth]++
	}

	buckets := make([]dtos.AgeBucket, 0, len(byMin))
	for lo, count := range byMin {
		hi := lo + ageBucketWidth - 1
		buckets = append(buckets, dtos.AgeBucket{
			Label: fmt.Sprintf("%d-%d", lo, hi),
			Min:   lo,
			Max:   hi,
			Count: count,
		})
	}
	slices.SortFunc(buckets, func(a, b dtos.AgeBucket) int { return a.Min - b.Min })
	return buckets, nil
}

func (s *AnalyticsServiceImpl) GenderDistribution(ctx context.Context) (map[entities.Gender]int, error) {
	patients, err := s.patientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	dist := make(map[entities.Gender]int)
	for _, p := range patients {
		dist[p.Gender]++
	}
	return dist, nil
}
