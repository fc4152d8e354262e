package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/miva/mind-dashboard/internal/adapters/authroles"
	"github.com/miva/mind-dashboard/internal/adapters/sharedsecret"
	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/domain/model"
	authmocks "github.com/miva/mind-dashboard/internal/mocks/auth"
	"github.com/miva/mind-dashboard/internal/service"
)

const testSecret = "open-sesame"

type testEnv struct {
	auth     *service.AuthService
	sessions *authmocks.RecordingSessionStore
	dash     *fakeDashboards
	handler  http.Handler
}

func newTestAuth(t *testing.T) (*service.AuthService, *authmocks.RecordingSessionStore) {
	t.Helper()
	verifier, err := sharedsecret.NewVerifier(testSecret)
	require.NoError(t, err)
	roles, err := authroles.NewStaticRoleResolver(authroles.Membership{
		Admins:     []string{"alice"},
		Faculty:    []string{"frank"},
		Developers: []string{"dana"},
	}, authroles.Options{})
	require.NoError(t, err)

	store := authmocks.NewRecordingSessionStore()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Deps: service.AuthDeps{Verifier: verifier, Sessions: store, Roles: roles},
	})
	return svc, store
}

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	tr, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: os.DirFS(TemplatePathFromTest)})
	require.NoError(t, err)
	return tr
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	auth, store := newTestAuth(t)
	dash := &fakeDashboards{}
	return &testEnv{
		auth:     auth,
		sessions: store,
		dash:     dash,
		handler: NewRouter(RouterServices{
			Auth:       auth,
			Dashboards: dash,
			Renderer:   newTestRenderer(t),
		}),
	}
}

// login creates a session directly through the service and returns its cookie.
func (e *testEnv) login(t *testing.T, username string) *http.Cookie {
	t.Helper()
	res, err := e.auth.Login(context.Background(), service.LoginInput{Username: username, Password: testSecret})
	require.NoError(t, err)
	return &http.Cookie{Name: SessionCookieName, Value: res.Session.ID}
}

type requestOpts struct {
	method  string
	target  string
	accept  string
	cookies []*http.Cookie
	form    url.Values
	body    string
	header  map[string]string
}

func (e *testEnv) do(opts requestOpts) *httptest.ResponseRecorder {
	if opts.method == "" {
		opts.method = http.MethodGet
	}
	var req *http.Request
	switch {
	case opts.form != nil:
		req = httptest.NewRequest(opts.method, opts.target, strings.NewReader(opts.form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case opts.body != "":
		req = httptest.NewRequest(opts.method, opts.target, strings.NewReader(opts.body))
		req.Header.Set("Content-Type", "application/json")
	default:
		req = httptest.NewRequest(opts.method, opts.target, nil)
	}
	if opts.accept != "" {
		req.Header.Set("Accept", opts.accept)
	}
	for k, v := range opts.header {
		req.Header.Set(k, v)
	}
	for _, c := range opts.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// csrfPair returns a matching cookie and form value for double-submit checks.
func csrfPair() (*http.Cookie, string) {
	const token = "test-csrf-token"
	return &http.Cookie{Name: DefaultCSRFCookieName, Value: token}, token
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type fakeDashboards struct {
	mu sync.Mutex

	studentIDs []string
	ranges     []model.DateRange
	metrics    []string
	err        error
}

var errFakeDashboard = errors.New("fake dashboard failure")

func (f *fakeDashboards) record(r model.DateRange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ranges = append(f.ranges, r)
	return f.err
}

func (f *fakeDashboards) Student(_ context.Context, id string, r model.DateRange) (*model.StudentDashboard, error) {
	f.mu.Lock()
	f.studentIDs = append(f.studentIDs, id)
	f.mu.Unlock()
	if err := f.record(r); err != nil {
		return nil, err
	}
	score := 72.5
	return &model.StudentDashboard{
		StudentID: id,
		Range:     r,
		KPIs:      []model.KPI{{Label: "Average score (latest attempt)", Value: &score}},
		LatestAttempts: []model.Attempt{{
			AttemptID: "a1", StudentID: id, CaseID: "c1", AttemptNumber: 1, Score: score,
			DurationSeconds: 600, Timestamp: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		}},
		AttemptComparison: []model.LabelValue{{Label: "Attempt 1", Value: score}},
		RubricMastery:     []model.LabelValue{{Label: "Communication", Value: 0.8}},
		EngagementPerDay: []model.DailyEngagement{{
			Day: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Events: 2, TotalDuration: 600,
		}},
	}, nil
}

func (f *fakeDashboards) Faculty(_ context.Context, r model.DateRange) (*model.FacultyDashboard, error) {
	if err := f.record(r); err != nil {
		return nil, err
	}
	return &model.FacultyDashboard{
		Range:           r,
		KPIs:            []model.KPI{{Label: "Active students"}},
		ScoresByCase:    []model.CaseScore{{CaseID: "c1", AvgScore: 60, Attempts: 3}},
		AtRisk:          []model.StudentScore{{StudentID: "s2", AvgScore: 40, Attempts: 1}},
		AtRiskThreshold: 50,
	}, nil
}

func (f *fakeDashboards) Developer(_ context.Context, r model.DateRange) (*model.DeveloperDashboard, error) {
	if err := f.record(r); err != nil {
		return nil, err
	}
	return &model.DeveloperDashboard{
		Range:          r,
		LatencySummary: []model.APILatencySummary{{APIName: "auth", AvgLatencyMS: 200, P50: 200, P95: 290}},
		Devices:        []model.DeviceTypeCount{{DeviceType: "laptop", Count: 1}},
	}, nil
}

func (f *fakeDashboards) Admin(_ context.Context, r model.DateRange, metric string) (*model.AdminDashboard, error) {
	f.mu.Lock()
	f.metrics = append(f.metrics, metric)
	f.mu.Unlock()
	if err := f.record(r); err != nil {
		return nil, err
	}
	d := &model.AdminDashboard{
		Range:       r,
		Aggregates:  []model.AdminAggregate{{MetricName: "active_users", MetricValue: 12}},
		Metric:      metric,
		GeneratedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	if metric != "" {
		d.MetricTrend = []model.MetricPoint{{Value: 10}, {Value: 12}}
	}
	return d, nil
}

func sessionFor(role domainauth.Role) *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-" + strings.ToLower(string(role)),
		Username:  strings.ToLower(string(role)) + "-user",
		Role:      role,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}
