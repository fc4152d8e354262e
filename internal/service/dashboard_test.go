package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/domain/model"
	"github.com/miva/mind-dashboard/internal/mocks"
	"github.com/miva/mind-dashboard/internal/testutil"
)

type dashboardFixture struct {
	repo *mocks.MockAnalyticsRepository
	sink *countingSink
	svc  *DashboardService
	jan  model.DateRange
}

func newDashboardFixture(t *testing.T, cache *core.AggregateCache) *dashboardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	jan, err := model.ParseDateRange("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	f := &dashboardFixture{
		repo: mocks.NewMockAnalyticsRepository(ctrl),
		sink: newCountingSink(),
		jan:  jan,
	}
	f.svc = NewDashboardService(DashboardServiceOptions{
		Deps:      DashboardDeps{Repo: f.repo, Cache: cache},
		Config:    DashboardServiceConfig{Now: testutil.FixedTimeFunc(testutil.TestTime())},
		Telemetry: Telemetry{Metrics: f.sink},
	})
	return f
}

func at(day int, hour int) time.Time {
	return time.Date(2024, 1, day, hour, 0, 0, 0, time.UTC)
}

func kpiValue(t *testing.T, kpis []model.KPI, label string) *float64 {
	t.Helper()
	for _, k := range kpis {
		if k.Label == label {
			return k.Value
		}
	}
	t.Fatalf("kpi %q not found in %+v", label, kpis)
	return nil
}

func TestNewDashboardService_PanicsWithoutRepo(t *testing.T) {
	assert.Panics(t, func() { NewDashboardService(DashboardServiceOptions{}) })
}

func TestDashboardService_Student(t *testing.T) {
	f := newDashboardFixture(t, nil)
	ctx := context.Background()

	attempts := []model.Attempt{
		{AttemptID: "a3", CaseID: "c2", AttemptNumber: 1, Score: 70, DurationSeconds: 900, Timestamp: at(20, 10)},
		{AttemptID: "a1", CaseID: "c1", AttemptNumber: 1, Score: 60, DurationSeconds: 600,
			CESValue: testutil.Float64Ptr(3), Timestamp: at(10, 10)},
		{AttemptID: "a2", CaseID: "c1", AttemptNumber: 2, Score: 80, DurationSeconds: 300,
			CESValue: testutil.Float64Ptr(4), Timestamp: at(15, 10)},
	}
	latest := []model.Attempt{attempts[2], attempts[0]}
	rubric := []model.RubricScore{
		{RubricDimension: "Diagnosis", Score: 5, MaxScore: 0},
		{RubricDimension: "Communication", Score: 8, MaxScore: 10},
		{RubricDimension: "Communication", Score: 6, MaxScore: 10},
	}
	engagement := []model.EngagementLog{
		{DurationSeconds: 120, Timestamp: at(10, 9)},
		{DurationSeconds: 480, Timestamp: at(10, 11)},
		{DurationSeconds: 600, Timestamp: at(20, 9)},
	}
	env := []model.EnvironmentMetric{{AttemptID: "a1", DeviceType: "laptop"}}

	f.repo.EXPECT().AttemptsForStudent(gomock.Any(), "s1", f.jan).Return(attempts, nil)
	f.repo.EXPECT().LatestAttemptsPerCase(gomock.Any(), "s1").Return(latest, nil)
	f.repo.EXPECT().RubricScoresForStudent(gomock.Any(), "s1").Return(rubric, nil)
	f.repo.EXPECT().EngagementForStudent(gomock.Any(), "s1", f.jan).Return(engagement, nil)
	f.repo.EXPECT().EnvironmentForStudent(gomock.Any(), "s1").Return(env, nil)

	d, err := f.svc.Student(ctx, "s1", f.jan)
	require.NoError(t, err)

	assert.False(t, d.Empty)
	assert.Equal(t, "s1", d.StudentID)
	assert.Equal(t, f.jan, d.Range)
	assert.Equal(t, latest, d.LatestAttempts)
	assert.Equal(t, env, d.Environment)

	assert.InDelta(t, 2, *kpiValue(t, d.KPIs, "Case studies attempted"), 1e-9)
	assert.InDelta(t, 75, *kpiValue(t, d.KPIs, "Average score (latest attempt)"), 1e-9)
	assert.InDelta(t, 600, *kpiValue(t, d.KPIs, "Average time on task (secs)"), 1e-9)
	assert.InDelta(t, 3.5, *kpiValue(t, d.KPIs, "Average CES"), 1e-9)

	require.Len(t, d.ScoreTrend, 3)
	assert.Equal(t, at(10, 10), d.ScoreTrend[0].Timestamp)
	assert.Equal(t, at(20, 10), d.ScoreTrend[2].Timestamp)

	assert.Equal(t, []model.LabelValue{
		{Label: "Attempt 1", Value: 65},
		{Label: "Attempt 2", Value: 80},
	}, d.AttemptComparison)

	require.Len(t, d.RubricMastery, 1, "zero max score rows are skipped")
	assert.Equal(t, "Communication", d.RubricMastery[0].Label)
	assert.InDelta(t, 0.7, d.RubricMastery[0].Value, 1e-9)

	assert.Equal(t, []float64{3, 4}, d.CESValues)

	require.Len(t, d.EngagementPerDay, 2)
	assert.Equal(t, int64(2), d.EngagementPerDay[0].Events)
	assert.InDelta(t, 600, d.EngagementPerDay[0].TotalDuration, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), d.EngagementPerDay[1].Day)

	assert.Equal(t, int64(1), f.sink.get("dashboard.load"))
}

func TestDashboardService_Student_Empty(t *testing.T) {
	f := newDashboardFixture(t, nil)

	f.repo.EXPECT().AttemptsForStudent(gomock.Any(), "s9", f.jan).Return([]model.Attempt{}, nil)
	f.repo.EXPECT().LatestAttemptsPerCase(gomock.Any(), "s9").Return([]model.Attempt{}, nil)
	f.repo.EXPECT().RubricScoresForStudent(gomock.Any(), "s9").Return(nil, nil)
	f.repo.EXPECT().EngagementForStudent(gomock.Any(), "s9", f.jan).Return(nil, nil)
	f.repo.EXPECT().EnvironmentForStudent(gomock.Any(), "s9").Return(nil, nil)

	d, err := f.svc.Student(context.Background(), "s9", f.jan)
	require.NoError(t, err)

	assert.True(t, d.Empty)
	assert.InDelta(t, 0, *kpiValue(t, d.KPIs, "Case studies attempted"), 1e-9)
	assert.Nil(t, kpiValue(t, d.KPIs, "Average score (latest attempt)"))
	assert.Nil(t, kpiValue(t, d.KPIs, "Average CES"))
	assert.Empty(t, d.ScoreTrend)
}

func TestDashboardService_Student_RepoError(t *testing.T) {
	f := newDashboardFixture(t, nil)
	boom := errors.New("connection reset")

	f.repo.EXPECT().AttemptsForStudent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom).AnyTimes()
	f.repo.EXPECT().LatestAttemptsPerCase(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().RubricScoresForStudent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().EngagementForStudent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.repo.EXPECT().EnvironmentForStudent(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	d, err := f.svc.Student(context.Background(), "s1", f.jan)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, d)
	assert.Contains(t, err.Error(), "load student dashboard")
}

func expectFaculty(f *dashboardFixture) {
	f.repo.EXPECT().ActiveStudents(gomock.Any(), f.jan).Return(int64(2), nil)
	f.repo.EXPECT().AttemptCount(gomock.Any(), f.jan).Return(int64(4), nil)
	f.repo.EXPECT().AverageScore(gomock.Any(), f.jan).Return(testutil.Float64Ptr(62.5), nil)
	f.repo.EXPECT().ScoresByCase(gomock.Any(), f.jan).Return([]model.CaseScore{{CaseID: "c1", AvgScore: 60, Attempts: 3}}, nil)
	f.repo.EXPECT().EngagementPerStudent(gomock.Any(), f.jan).Return([]model.StudentEngagementTotal{{StudentID: "s1"}}, nil)
	f.repo.EXPECT().EngagementPerCase(gomock.Any(), f.jan).Return([]model.CaseEngagement{{CaseID: "c1"}}, nil)
	f.repo.EXPECT().StudentAverageScores(gomock.Any(), f.jan).Return([]model.StudentScore{
		{StudentID: "s2", AvgScore: 40, Attempts: 1},
		{StudentID: "s1", AvgScore: 70, Attempts: 3},
	}, nil)
}

func TestDashboardService_Faculty(t *testing.T) {
	f := newDashboardFixture(t, nil)
	expectFaculty(f)

	d, err := f.svc.Faculty(context.Background(), f.jan)
	require.NoError(t, err)

	assert.Equal(t, f.jan, d.Range)
	assert.InDelta(t, 2, *kpiValue(t, d.KPIs, "Active students"), 1e-9)
	assert.InDelta(t, 4, *kpiValue(t, d.KPIs, "Attempts"), 1e-9)
	assert.InDelta(t, 62.5, *kpiValue(t, d.KPIs, "Average score"), 1e-9)
	assert.InDelta(t, 1, *kpiValue(t, d.KPIs, "At-risk students"), 1e-9)
	assert.Equal(t, []model.StudentScore{{StudentID: "s2", AvgScore: 40, Attempts: 1}}, d.AtRisk)
	assert.InDelta(t, DefaultAtRiskThreshold, d.AtRiskThreshold, 1e-9)
	assert.Len(t, d.ScoresByCase, 1)
}

func TestDashboardService_Faculty_CachesResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheRepo := core.NewMockCacheRepository(ctrl)
	cache := core.NewAggregateCache(core.AggregateCacheOptions{
		Cache:  cacheRepo,
		Config: core.AggregateCacheConfig{TTL: 5 * time.Minute, KeyPrefix: "mind:"},
	})
	f := newDashboardFixture(t, cache)
	key := "mind:dashboard:faculty:2024-01-01:2024-01-31"

	t.Run("miss loads and stores", func(t *testing.T) {
		expectFaculty(f)
		cacheRepo.EXPECT().Get(gomock.Any(), key).Return(nil, nil)
		cacheRepo.EXPECT().Set(gomock.Any(), key, gomock.Any(), 5*time.Minute).Return(nil)

		_, err := f.svc.Faculty(context.Background(), f.jan)
		require.NoError(t, err)
	})

	t.Run("hit skips the database", func(t *testing.T) {
		cached, err := json.Marshal(&model.FacultyDashboard{AtRiskThreshold: 50, AtRisk: []model.StudentScore{{StudentID: "s2"}}})
		require.NoError(t, err)
		cacheRepo.EXPECT().Get(gomock.Any(), key).Return(cached, nil)

		d, err := f.svc.Faculty(context.Background(), f.jan)
		require.NoError(t, err)
		assert.Equal(t, f.jan, d.Range, "range is restored after decoding")
		assert.Equal(t, "s2", d.AtRisk[0].StudentID)
	})

	t.Run("cache failure falls through", func(t *testing.T) {
		expectFaculty(f)
		cacheRepo.EXPECT().Get(gomock.Any(), key).Return(nil, errors.New("redis down"))
		cacheRepo.EXPECT().Set(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		d, err := f.svc.Faculty(context.Background(), f.jan)
		require.NoError(t, err)
		assert.Len(t, d.AtRisk, 1)
	})
}

func TestDashboardService_Developer(t *testing.T) {
	f := newDashboardFixture(t, nil)

	incidents := []model.ReliabilityLog{{APIName: "scoring", Severity: model.SeverityCritical}}
	f.repo.EXPECT().ReliabilityLogs(gomock.Any(), f.jan).Return([]model.ReliabilityLog{
		{LatencyMS: 100, ErrorRate: 0.01},
		{LatencyMS: 300, ErrorRate: 0.05},
	}, nil)
	f.repo.EXPECT().APILatencySummary(gomock.Any(), f.jan).Return([]model.APILatencySummary{{APIName: "auth"}}, nil)
	f.repo.EXPECT().ErrorRateByAPI(gomock.Any(), f.jan).Return([]model.APIErrorRate{{APIName: "auth"}}, nil)
	f.repo.EXPECT().CriticalIncidents(gomock.Any(), f.jan).Return(incidents, nil)
	f.repo.EXPECT().IncidentsByLocation(gomock.Any(), f.jan).Return([]model.LocationIncidents{{Location: "eu-west", Incidents: 1}}, nil)
	f.repo.EXPECT().EnvironmentSummary(gomock.Any(), f.jan).Return(model.EnvironmentSummary{}, nil)
	f.repo.EXPECT().DeviceTypeDistribution(gomock.Any(), f.jan).Return(nil, nil)
	f.repo.EXPECT().LatestReliability(gomock.Any(), DefaultLatestReliabilityLimit).Return(incidents, nil)

	d, err := f.svc.Developer(context.Background(), f.jan)
	require.NoError(t, err)

	assert.InDelta(t, 1, *kpiValue(t, d.KPIs, "Critical incidents"), 1e-9)
	assert.InDelta(t, 200, *kpiValue(t, d.KPIs, "Mean API latency (ms)"), 1e-9)
	assert.InDelta(t, 0.03, *kpiValue(t, d.KPIs, "Mean error rate"), 1e-9)
	assert.Nil(t, kpiValue(t, d.KPIs, "Avg internet latency (ms)"), "no environment samples")
	assert.Nil(t, kpiValue(t, d.KPIs, "Avg stability"))
	assert.Equal(t, incidents, d.CriticalIncidents)
	assert.Equal(t, incidents, d.Latest)
}

func expectAdminBase(f *dashboardFixture) {
	f.repo.EXPECT().ActiveStudents(gomock.Any(), f.jan).Return(int64(2), nil)
	f.repo.EXPECT().AttemptCount(gomock.Any(), f.jan).Return(int64(4), nil)
	f.repo.EXPECT().AverageScore(gomock.Any(), f.jan).Return(nil, nil)
	f.repo.EXPECT().AdminAggregates(gomock.Any(), f.jan).Return([]model.AdminAggregate{{MetricName: "active_users"}}, nil)
	f.repo.EXPECT().DailyEngagement(gomock.Any(), f.jan).Return([]model.DailyEngagement{{Events: 3}}, nil)
}

func TestDashboardService_Admin(t *testing.T) {
	t.Run("without metric", func(t *testing.T) {
		f := newDashboardFixture(t, nil)
		expectAdminBase(f)

		d, err := f.svc.Admin(context.Background(), f.jan, "")
		require.NoError(t, err)
		assert.Empty(t, d.MetricTrend)
		assert.Nil(t, kpiValue(t, d.KPIs, "Average score"))
		assert.Equal(t, testutil.TestTime(), d.GeneratedAt)
		assert.Len(t, d.Aggregates, 1)
	})

	t.Run("with metric trend", func(t *testing.T) {
		f := newDashboardFixture(t, nil)
		expectAdminBase(f)
		trend := []model.MetricPoint{{Timestamp: at(10, 0), Value: 10}, {Timestamp: at(11, 0), Value: 12}}
		f.repo.EXPECT().AdminMetricTrend(gomock.Any(), "active_users").Return(trend, nil)

		d, err := f.svc.Admin(context.Background(), f.jan, "active_users")
		require.NoError(t, err)
		assert.Equal(t, "active_users", d.Metric)
		assert.Equal(t, trend, d.MetricTrend)
	})
}

func TestMean(t *testing.T) {
	assert.Nil(t, mean(nil))
	assert.InDelta(t, 2.0, *mean([]float64{1, 2, 3}), 1e-9)
}

func TestDashboardService_Student_ScoresAllTimeLatestAttempt(t *testing.T) {
	f := newDashboardFixture(t, nil)

	inRange := []model.Attempt{
		{AttemptID: "a1", CaseID: "c1", AttemptNumber: 1, Score: 60, DurationSeconds: 120, Timestamp: at(10, 10)},
	}
	// The retake happened after the selected range.
	latest := []model.Attempt{
		{AttemptID: "a2", CaseID: "c1", AttemptNumber: 2, Score: 90, DurationSeconds: 45,
			Timestamp: time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)},
	}

	f.repo.EXPECT().AttemptsForStudent(gomock.Any(), "s1", f.jan).Return(inRange, nil)
	f.repo.EXPECT().LatestAttemptsPerCase(gomock.Any(), "s1").Return(latest, nil)
	f.repo.EXPECT().RubricScoresForStudent(gomock.Any(), "s1").Return(nil, nil)
	f.repo.EXPECT().EngagementForStudent(gomock.Any(), "s1", f.jan).Return(nil, nil)
	f.repo.EXPECT().EnvironmentForStudent(gomock.Any(), "s1").Return(nil, nil)

	d, err := f.svc.Student(context.Background(), "s1", f.jan)
	require.NoError(t, err)

	assert.InDelta(t, 90, *kpiValue(t, d.KPIs, "Average score (latest attempt)"), 1e-9)
	assert.InDelta(t, 1, *kpiValue(t, d.KPIs, "Case studies attempted"), 1e-9)
	assert.InDelta(t, 120, *kpiValue(t, d.KPIs, "Average time on task (secs)"), 1e-9,
		"time on task only covers attempts in range")
}

func TestDistinctCases(t *testing.T) {
	assert.Equal(t, int64(0), distinctCases(nil))
	assert.Equal(t, int64(2), distinctCases([]model.Attempt{
		{CaseID: "c1", AttemptNumber: 1},
		{CaseID: "c1", AttemptNumber: 2},
		{CaseID: "c2", AttemptNumber: 1},
	}))
}
