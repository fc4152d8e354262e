package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/domain/model"
	"github.com/miva/mind-dashboard/internal/observability/metrics"
)

const (
	// DefaultAtRiskThreshold is the average score below which a student is flagged.
	DefaultAtRiskThreshold = 50.0
	// DefaultLatestReliabilityLimit bounds the developer dashboard's live feed.
	DefaultLatestReliabilityLimit = 20
)

// DashboardDeps are the data sources behind DashboardService.
type DashboardDeps struct {
	Repo core.AnalyticsRepository
	// Cache memoizes platform-wide dashboards; nil disables caching.
	Cache *core.AggregateCache
}

// DashboardServiceConfig tunes dashboard contents.
type DashboardServiceConfig struct {
	AtRiskThreshold        float64
	LatestReliabilityLimit int
	Now                    func() time.Time
}

// DashboardServiceOptions groups dependencies for DashboardService.
type DashboardServiceOptions struct {
	Deps      DashboardDeps
	Config    DashboardServiceConfig
	Telemetry Telemetry
}

// DashboardService assembles the four role dashboards from the analytics store.
type DashboardService struct {
	repo  core.AnalyticsRepository
	cache *core.AggregateCache

	atRisk      float64
	latestLimit int
	now         func() time.Time
	tel         Telemetry
}

// NewDashboardService constructs a new DashboardService. It panics when Repo is nil.
func NewDashboardService(opts DashboardServiceOptions) *DashboardService {
	if opts.Deps.Repo == nil {
		panic("service: DashboardService requires Repo")
	}
	cfg := opts.Config
	if cfg.AtRiskThreshold <= 0 {
		cfg.AtRiskThreshold = DefaultAtRiskThreshold
	}
	if cfg.LatestReliabilityLimit <= 0 {
		cfg.LatestReliabilityLimit = DefaultLatestReliabilityLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &DashboardService{
		repo:        opts.Deps.Repo,
		cache:       opts.Deps.Cache,
		atRisk:      cfg.AtRiskThreshold,
		latestLimit: cfg.LatestReliabilityLimit,
		now:         cfg.Now,
		tel:         opts.Telemetry,
	}
}

// observe emits the dashboard.load metric and logs failures.
func (s *DashboardService) observe(ctx context.Context, kind string, start time.Time, err error) {
	metrics.EmitDashboardLoad(s.tel.Metrics, metrics.DashboardMetric{
		Kind:     kind,
		Duration: time.Since(start),
		Err:      err,
	})
	if err != nil {
		s.tel.logger().ErrorContext(ctx, "dashboard load failed", "kind", kind, "error", err)
	}
}

// Student builds the personal dashboard for studentID. Per-student data is never cached.
func (s *DashboardService) Student(
	ctx context.Context,
	studentID string,
	r model.DateRange,
) (_ *model.StudentDashboard, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "student", start, err) }()

	var (
		attempts   []model.Attempt
		latest     []model.Attempt
		rubric     []model.RubricScore
		engagement []model.EngagementLog
		env        []model.EnvironmentMetric
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) { attempts, e = s.repo.AttemptsForStudent(gctx, studentID, r); return e })
	g.Go(func() (e error) { latest, e = s.repo.LatestAttemptsPerCase(gctx, studentID); return e })
	g.Go(func() (e error) { rubric, e = s.repo.RubricScoresForStudent(gctx, studentID); return e })
	g.Go(func() (e error) { engagement, e = s.repo.EngagementForStudent(gctx, studentID, r); return e })
	g.Go(func() (e error) { env, e = s.repo.EnvironmentForStudent(gctx, studentID); return e })
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load student dashboard: %w", err)
	}

	d := &model.StudentDashboard{
		StudentID:      studentID,
		Range:          r,
		Empty:          len(attempts) == 0,
		LatestAttempts: latest,
		Environment:    env,
	}
	d.KPIs = studentKPIs(attempts, latest)
	if d.Empty {
		return d, nil
	}

	d.ScoreTrend = scoreTrend(attempts)
	d.AttemptComparison = meanScoreByAttemptNumber(attempts)
	d.RubricMastery = rubricMastery(rubric)
	d.TimeVsScore = attempts
	d.CESValues = cesValues(attempts)
	d.EngagementPerDay = engagementPerDay(engagement)
	return d, nil
}

// Faculty builds the cohort dashboard.
func (s *DashboardService) Faculty(ctx context.Context, r model.DateRange) (_ *model.FacultyDashboard, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "faculty", start, err) }()

	key := s.cache.Key("dashboard", "faculty", r.Key())
	d, err := core.Cached(ctx, s.cache, key, func(ctx context.Context) (*model.FacultyDashboard, error) {
		return s.loadFaculty(ctx, r)
	})
	if err != nil {
		return nil, fmt.Errorf("load faculty dashboard: %w", err)
	}
	d.Range = r
	return d, nil
}

func (s *DashboardService) loadFaculty(ctx context.Context, r model.DateRange) (*model.FacultyDashboard, error) {
	var (
		active, attempts int64
		avg              *float64
		byCase           []model.CaseScore
		perStudent       []model.StudentEngagementTotal
		perCase          []model.CaseEngagement
		studentScores    []model.StudentScore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) { active, e = s.repo.ActiveStudents(gctx, r); return e })
	g.Go(func() (e error) { attempts, e = s.repo.AttemptCount(gctx, r); return e })
	g.Go(func() (e error) { avg, e = s.repo.AverageScore(gctx, r); return e })
	g.Go(func() (e error) { byCase, e = s.repo.ScoresByCase(gctx, r); return e })
	g.Go(func() (e error) { perStudent, e = s.repo.EngagementPerStudent(gctx, r); return e })
	g.Go(func() (e error) { perCase, e = s.repo.EngagementPerCase(gctx, r); return e })
	g.Go(func() (e error) { studentScores, e = s.repo.StudentAverageScores(gctx, r); return e })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	atRisk := belowThreshold(studentScores, s.atRisk)
	return &model.FacultyDashboard{
		KPIs: []model.KPI{
			countKPI("Active students", active),
			countKPI("Attempts", attempts),
			{Label: "Average score", Value: avg},
			countKPI("At-risk students", int64(len(atRisk))),
		},
		ScoresByCase:         byCase,
		EngagementPerStudent: perStudent,
		EngagementPerCase:    perCase,
		AtRisk:               atRisk,
		AtRiskThreshold:      s.atRisk,
	}, nil
}

// Developer builds the platform health dashboard.
func (s *DashboardService) Developer(ctx context.Context, r model.DateRange) (_ *model.DeveloperDashboard, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "developer", start, err) }()

	key := s.cache.Key("dashboard", "developer", r.Key())
	d, err := core.Cached(ctx, s.cache, key, func(ctx context.Context) (*model.DeveloperDashboard, error) {
		return s.loadDeveloper(ctx, r)
	})
	if err != nil {
		return nil, fmt.Errorf("load developer dashboard: %w", err)
	}
	d.Range = r
	return d, nil
}

func (s *DashboardService) loadDeveloper(ctx context.Context, r model.DateRange) (*model.DeveloperDashboard, error) {
	d := &model.DeveloperDashboard{}
	var logs []model.ReliabilityLog

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) { logs, e = s.repo.ReliabilityLogs(gctx, r); return e })
	g.Go(func() (e error) { d.LatencySummary, e = s.repo.APILatencySummary(gctx, r); return e })
	g.Go(func() (e error) { d.ErrorRates, e = s.repo.ErrorRateByAPI(gctx, r); return e })
	g.Go(func() (e error) { d.CriticalIncidents, e = s.repo.CriticalIncidents(gctx, r); return e })
	g.Go(func() (e error) { d.IncidentsByLocation, e = s.repo.IncidentsByLocation(gctx, r); return e })
	g.Go(func() (e error) { d.Environment, e = s.repo.EnvironmentSummary(gctx, r); return e })
	g.Go(func() (e error) { d.Devices, e = s.repo.DeviceTypeDistribution(gctx, r); return e })
	g.Go(func() (e error) { d.Latest, e = s.repo.LatestReliability(gctx, s.latestLimit); return e })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.KPIs = developerKPIs(logs, d)
	return d, nil
}

// Admin builds the platform overview. A non-empty metric adds that metric's trend.
func (s *DashboardService) Admin(
	ctx context.Context,
	r model.DateRange,
	metric string,
) (_ *model.AdminDashboard, err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "admin", start, err) }()

	parts := []string{"dashboard", "admin", r.Key()}
	if metric != "" {
		parts = append(parts, metric)
	}
	d, err := core.Cached(ctx, s.cache, s.cache.Key(parts...), func(ctx context.Context) (*model.AdminDashboard, error) {
		return s.loadAdmin(ctx, r, metric)
	})
	if err != nil {
		return nil, fmt.Errorf("load admin dashboard: %w", err)
	}
	d.Range = r
	return d, nil
}

func (s *DashboardService) loadAdmin(ctx context.Context, r model.DateRange, metric string) (*model.AdminDashboard, error) {
	d := &model.AdminDashboard{Metric: metric, GeneratedAt: s.now().UTC()}
	var (
		active, attempts int64
		avg              *float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) { active, e = s.repo.ActiveStudents(gctx, r); return e })
	g.Go(func() (e error) { attempts, e = s.repo.AttemptCount(gctx, r); return e })
	g.Go(func() (e error) { avg, e = s.repo.AverageScore(gctx, r); return e })
	g.Go(func() (e error) { d.Aggregates, e = s.repo.AdminAggregates(gctx, r); return e })
	g.Go(func() (e error) { d.DailyEngagement, e = s.repo.DailyEngagement(gctx, r); return e })
	if metric != "" {
		g.Go(func() (e error) { d.MetricTrend, e = s.repo.AdminMetricTrend(gctx, metric); return e })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.KPIs = []model.KPI{
		countKPI("Active students", active),
		countKPI("Attempts", attempts),
		{Label: "Average score", Value: avg},
	}
	return d, nil
}
