package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/data/pgxutil"
	"github.com/miva/mind-dashboard/internal/domain/model"
	apperrors "github.com/miva/mind-dashboard/internal/errors"
)

// ErrStudentIDRequired is returned by per-student reads called without an id.
var ErrStudentIDRequired = errors.New("student_id is required")

var _ core.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo runs the read-only dashboard queries against PostgreSQL.
type AnalyticsRepo struct {
	DB           *sql.DB
	queryTimeout time.Duration
}

// NewAnalyticsRepo creates a new AnalyticsRepo. A positive queryTimeout bounds every query.
func NewAnalyticsRepo(db *sql.DB, queryTimeout time.Duration) *AnalyticsRepo {
	return &AnalyticsRepo{DB: db, queryTimeout: queryTimeout}
}

// Health pings the database.
func (r *AnalyticsRepo) Health(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func (r *AnalyticsRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.queryTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.queryTimeout)
}

// queryRows runs query and maps every row onto T by db tag.
func queryRows[T any](ctx context.Context, r *AnalyticsRepo, op, query string, args ...any) ([]T, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out []T
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, apperrors.MapDBError(err))
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// queryScalar scans a single-row, single-column result into dst.
func (r *AnalyticsRepo) queryScalar(ctx context.Context, op, query string, dst any, args ...any) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, query, args...).Scan(dst)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, apperrors.MapDBError(err))
	}
	return nil
}

// AttemptsForStudent returns the student's attempts inside the range, oldest first.
func (r *AnalyticsRepo) AttemptsForStudent(
	ctx context.Context,
	studentID string,
	dr model.DateRange,
) ([]model.Attempt, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	from, until := dr.Bounds()
	return queryRows[model.Attempt](ctx, r, "attempts for student", attemptsForStudentQuery, studentID, from, until)
}

func (r *AnalyticsRepo) LatestAttemptsPerCase(ctx context.Context, studentID string) ([]model.Attempt, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	return queryRows[model.Attempt](ctx, r, "latest attempts per case", latestAttemptsPerCaseQuery, studentID)
}

func (r *AnalyticsRepo) ActiveStudents(ctx context.Context, dr model.DateRange) (int64, error) {
	from, until := dr.Bounds()
	var n int64
	err := r.queryScalar(ctx, "active students", activeStudentsQuery, &n, from, until)
	return n, err
}

func (r *AnalyticsRepo) AttemptCount(ctx context.Context, dr model.DateRange) (int64, error) {
	from, until := dr.Bounds()
	var n int64
	err := r.queryScalar(ctx, "attempt count", attemptCountQuery, &n, from, until)
	return n, err
}

// AverageScore returns nil when no attempts fall inside the range.
func (r *AnalyticsRepo) AverageScore(ctx context.Context, dr model.DateRange) (*float64, error) {
	from, until := dr.Bounds()
	var avg *float64
	if err := r.queryScalar(ctx, "average score", averageScoreQuery, &avg, from, until); err != nil {
		return nil, err
	}
	return avg, nil
}

func (r *AnalyticsRepo) ScoresByCase(ctx context.Context, dr model.DateRange) ([]model.CaseScore, error) {
	from, until := dr.Bounds()
	return queryRows[model.CaseScore](ctx, r, "scores by case", scoresByCaseQuery, from, until)
}

// StudentAverageScores returns per-student means, lowest first.
func (r *AnalyticsRepo) StudentAverageScores(ctx context.Context, dr model.DateRange) ([]model.StudentScore, error) {
	from, until := dr.Bounds()
	return queryRows[model.StudentScore](ctx, r, "student average scores", studentAverageScoresQuery, from, until)
}

func (r *AnalyticsRepo) RubricScoresForStudent(ctx context.Context, studentID string) ([]model.RubricScore, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	return queryRows[model.RubricScore](ctx, r, "rubric scores for student", rubricScoresForStudentQuery, studentID)
}

func (r *AnalyticsRepo) EngagementLogs(ctx context.Context, dr model.DateRange) ([]model.EngagementLog, error) {
	from, until := dr.Bounds()
	return queryRows[model.EngagementLog](ctx, r, "engagement logs", engagementLogsQuery, from, until)
}

func (r *AnalyticsRepo) EngagementForStudent(
	ctx context.Context,
	studentID string,
	dr model.DateRange,
) ([]model.EngagementLog, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	from, until := dr.Bounds()
	return queryRows[model.EngagementLog](ctx, r, "engagement for student", engagementForStudentQuery,
		studentID, from, until)
}

func (r *AnalyticsRepo) DailyEngagement(ctx context.Context, dr model.DateRange) ([]model.DailyEngagement, error) {
	from, until := dr.Bounds()
	return queryRows[model.DailyEngagement](ctx, r, "daily engagement", dailyEngagementQuery, from, until)
}

func (r *AnalyticsRepo) EngagementPerStudent(
	ctx context.Context,
	dr model.DateRange,
) ([]model.StudentEngagementTotal, error) {
	from, until := dr.Bounds()
	return queryRows[model.StudentEngagementTotal](ctx, r, "engagement per student", engagementPerStudentQuery,
		from, until)
}

func (r *AnalyticsRepo) EngagementPerCase(ctx context.Context, dr model.DateRange) ([]model.CaseEngagement, error) {
	from, until := dr.Bounds()
	return queryRows[model.CaseEngagement](ctx, r, "engagement per case", engagementPerCaseQuery, from, until)
}

func (r *AnalyticsRepo) EnvironmentForStudent(ctx context.Context, studentID string) ([]model.EnvironmentMetric, error) {
	if studentID == "" {
		return nil, ErrStudentIDRequired
	}
	return queryRows[model.EnvironmentMetric](ctx, r, "environment for student", environmentForStudentQuery, studentID)
}

func (r *AnalyticsRepo) EnvironmentSummary(ctx context.Context, dr model.DateRange) (model.EnvironmentSummary, error) {
	from, until := dr.Bounds()
	rows, err := queryRows[model.EnvironmentSummary](ctx, r, "environment summary", environmentSummaryQuery, from, until)
	if err != nil {
		return model.EnvironmentSummary{}, err
	}
	if len(rows) == 0 {
		return model.EnvironmentSummary{}, nil
	}
	return rows[0], nil
}

func (r *AnalyticsRepo) DeviceTypeDistribution(ctx context.Context, dr model.DateRange) ([]model.DeviceTypeCount, error) {
	from, until := dr.Bounds()
	return queryRows[model.DeviceTypeCount](ctx, r, "device type distribution", deviceTypeDistributionQuery,
		from, until)
}

func (r *AnalyticsRepo) ReliabilityLogs(ctx context.Context, dr model.DateRange) ([]model.ReliabilityLog, error) {
	from, until := dr.Bounds()
	return queryRows[model.ReliabilityLog](ctx, r, "reliability logs", reliabilityLogsQuery, from, until)
}

// LatestReliability returns the most recent readings, newest first.
func (r *AnalyticsRepo) LatestReliability(ctx context.Context, limit int) ([]model.ReliabilityLog, error) {
	if limit <= 0 {
		limit = 20
	}
	return queryRows[model.ReliabilityLog](ctx, r, "latest reliability", latestReliabilityQuery, limit)
}

func (r *AnalyticsRepo) APILatencySummary(ctx context.Context, dr model.DateRange) ([]model.APILatencySummary, error) {
	from, until := dr.Bounds()
	return queryRows[model.APILatencySummary](ctx, r, "api latency summary", apiLatencySummaryQuery, from, until)
}

func (r *AnalyticsRepo) ErrorRateByAPI(ctx context.Context, dr model.DateRange) ([]model.APIErrorRate, error) {
	from, until := dr.Bounds()
	return queryRows[model.APIErrorRate](ctx, r, "error rate by api", errorRateByAPIQuery, from, until)
}

func (r *AnalyticsRepo) CriticalIncidents(ctx context.Context, dr model.DateRange) ([]model.ReliabilityLog, error) {
	from, until := dr.Bounds()
	return queryRows[model.ReliabilityLog](ctx, r, "critical incidents", criticalIncidentsQuery,
		model.SeverityCritical, from, until)
}

func (r *AnalyticsRepo) IncidentsByLocation(ctx context.Context, dr model.DateRange) ([]model.LocationIncidents, error) {
	from, until := dr.Bounds()
	return queryRows[model.LocationIncidents](ctx, r, "incidents by location", incidentsByLocationQuery,
		model.SeverityCritical, from, until)
}

func (r *AnalyticsRepo) AdminAggregates(ctx context.Context, dr model.DateRange) ([]model.AdminAggregate, error) {
	from, until := dr.Bounds()
	return queryRows[model.AdminAggregate](ctx, r, "admin aggregates", adminAggregatesQuery, from, until)
}

// AdminMetricTrend returns every sample of one admin metric, oldest first.
func (r *AnalyticsRepo) AdminMetricTrend(ctx context.Context, metric string) ([]model.MetricPoint, error) {
	if metric == "" {
		return nil, apperrors.Validation("metric name is required")
	}
	return queryRows[model.MetricPoint](ctx, r, "admin metric trend", adminMetricTrendQuery, metric)
}
