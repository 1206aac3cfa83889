package services

import (
	"context"

	"clinic-triage-service/internal/domain/dtos"
	"clinic-triage-service/internal/domain/entities"
)

const (
	// DefaultTrendWindowDays is used when a trend window is not positive.
	DefaultTrendWindowDays = 7
	// MaxTrendWindowDays bounds the trend window to one leap year.
	MaxTrendWindowDays = 366
)

// AnalyticsServiceContract exposes read-only aggregates over the record store.
// Every call is computed from the current contents; nothing is cached.
type AnalyticsServiceContract interface {
	PatientStats(ctx context.Context) (dtos.PatientStats, error)
	// ConsultationTrends returns one point per day for the trailing window, oldest first,
	// ending today. Windows above MaxTrendWindowDays are a ValidationError.
	ConsultationTrends(ctx context.Context, windowDays int) ([]dtos.TrendPoint, error)
	ConsultationTypeBreakdown(ctx context.Context) (map[string]int, error)
	AgeDistribution(ctx context.Context) ([]dtos.AgeBucket, error)
	GenderDistribution(ctx context.Context) (map[entities.Gender]int, error)
}
