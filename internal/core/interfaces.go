package core

import (
	"context"

	"github.com/miva/mind-dashboard/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// AttemptReader reads case-study attempts and score aggregates.
type AttemptReader interface {
	AttemptsForStudent(ctx context.Context, studentID string, r model.DateRange) ([]model.Attempt, error)
	// LatestAttemptsPerCase returns the highest-numbered attempt for each case the student attempted.
	LatestAttemptsPerCase(ctx context.Context, studentID string) ([]model.Attempt, error)
	ActiveStudents(ctx context.Context, r model.DateRange) (int64, error)
	AttemptCount(ctx context.Context, r model.DateRange) (int64, error)
	// AverageScore returns nil when no attempts fall in r.
	AverageScore(ctx context.Context, r model.DateRange) (*float64, error)
	ScoresByCase(ctx context.Context, r model.DateRange) ([]model.CaseScore, error)
	StudentAverageScores(ctx context.Context, r model.DateRange) ([]model.StudentScore, error)
	RubricScoresForStudent(ctx context.Context, studentID string) ([]model.RubricScore, error)
}

// EngagementReader reads engagement events and their rollups.
type EngagementReader interface {
	EngagementLogs(ctx context.Context, r model.DateRange) ([]model.EngagementLog, error)
	EngagementForStudent(ctx context.Context, studentID string, r model.DateRange) ([]model.EngagementLog, error)
	DailyEngagement(ctx context.Context, r model.DateRange) ([]model.DailyEngagement, error)
	EngagementPerStudent(ctx context.Context, r model.DateRange) ([]model.StudentEngagementTotal, error)
	EngagementPerCase(ctx context.Context, r model.DateRange) ([]model.CaseEngagement, error)
}

// EnvironmentReader reads learning-environment quality metrics.
type EnvironmentReader interface {
	EnvironmentForStudent(ctx context.Context, studentID string) ([]model.EnvironmentMetric, error)
	EnvironmentSummary(ctx context.Context, r model.DateRange) (model.EnvironmentSummary, error)
	DeviceTypeDistribution(ctx context.Context, r model.DateRange) ([]model.DeviceTypeCount, error)
}

// ReliabilityReader reads platform reliability telemetry.
type ReliabilityReader interface {
	ReliabilityLogs(ctx context.Context, r model.DateRange) ([]model.ReliabilityLog, error)
	LatestReliability(ctx context.Context, limit int) ([]model.ReliabilityLog, error)
	APILatencySummary(ctx context.Context, r model.DateRange) ([]model.APILatencySummary, error)
	ErrorRateByAPI(ctx context.Context, r model.DateRange) ([]model.APIErrorRate, error)
	CriticalIncidents(ctx context.Context, r model.DateRange) ([]model.ReliabilityLog, error)
	IncidentsByLocation(ctx context.Context, r model.DateRange) ([]model.LocationIncidents, error)
}

// AdminReader reads precomputed platform aggregates.
type AdminReader interface {
	AdminAggregates(ctx context.Context, r model.DateRange) ([]model.AdminAggregate, error)
	AdminMetricTrend(ctx context.Context, metric string) ([]model.MetricPoint, error)
}

// AnalyticsRepository is the read-only data-access layer behind every dashboard.
type AnalyticsRepository interface {
	AttemptReader
	EngagementReader
	EnvironmentReader
	ReliabilityReader
	AdminReader
}

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}
