package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
)

// stubAuthorizer answers every check with a fixed session or error.
type stubAuthorizer struct {
	session *domainauth.Session
	err     error

	mu    sync.Mutex
	calls []string
}

func (s *stubAuthorizer) RequireLogin(_ context.Context, sessionID string) (*domainauth.Session, error) {
	s.mu.Lock()
	s.calls = append(s.calls, sessionID)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

func (s *stubAuthorizer) RequireRole(ctx context.Context, sessionID string, required domainauth.Role) (*domainauth.Session, error) {
	sess, err := s.RequireLogin(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.Role.Satisfies(required) {
		return nil, &domainauth.InsufficientRoleError{Required: required, Actual: sess.Role}
	}
	return sess, nil
}

// guarded wraps a handler that records whether it ran and the session it saw.
func guarded(t *testing.T, mw func(http.Handler) http.Handler) (http.Handler, *bool, **domainauth.Session) {
	t.Helper()
	ran := false
	var seen *domainauth.Session
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
		seen, _ = SessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return BrowserDetection()(mw(inner)), &ran, &seen
}

func TestRequireLogin_BrowserUnauthenticatedRedirectsToLogin(t *testing.T) {
	auth := &stubAuthorizer{err: domainauth.ErrNotAuthenticated}
	h, ran, _ := guarded(t, RequireLogin(GuardOptions{Auth: auth}))

	req := httptest.NewRequest(http.MethodGet, "/dashboards/faculty?start=2024-01-01", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *ran)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/login?redirect_uri=%2Fdashboards%2Ffaculty%3Fstart%3D2024-01-01", rec.Header().Get("Location"))
}

func TestRequireLogin_APIUnauthenticatedReturns401(t *testing.T) {
	auth := &stubAuthorizer{err: domainauth.ErrNotAuthenticated}
	h, ran, _ := guarded(t, RequireLogin(GuardOptions{Auth: auth}))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboards/faculty", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *ran)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "authentication_required", body["error"])
}

func TestRequireLogin_HTMXUnauthenticatedUsesHXRedirect(t *testing.T) {
	auth := &stubAuthorizer{err: domainauth.ErrNotAuthenticated}
	h, _, _ := guarded(t, RequireLogin(GuardOptions{Auth: auth}))

	req := httptest.NewRequest(http.MethodGet, "/dashboards/student", nil)
	req.Header.Set("Hx-Request", "true")
	req.Header.Set("Hx-Current-Url", "https://mind.example.com/dashboards/student?start=2024-01-01")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/auth/login?redirect_uri=%2Fdashboards%2Fstudent%3Fstart%3D2024-01-01", rec.Header().Get("Hx-Redirect"))
}

func TestRequireLogin_PassesSessionToHandler(t *testing.T) {
	sess := sessionFor(domainauth.RoleStudent)
	auth := &stubAuthorizer{session: sess}
	h, ran, seen := guarded(t, RequireLogin(GuardOptions{Auth: auth}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.True(t, *ran)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, sess, *seen)
	assert.Equal(t, []string{sess.ID}, auth.calls)
}

func TestRequireRole_BrowserInsufficientRoleShowsAccessDenied(t *testing.T) {
	auth := &stubAuthorizer{session: sessionFor(domainauth.RoleStudent)}
	pages := &Pages{T: newTestRenderer(t)}
	h, ran, _ := guarded(t, RequireRole(GuardOptions{Auth: auth, Pages: pages}, domainauth.RoleFaculty))

	req := httptest.NewRequest(http.MethodGet, "/dashboards/faculty", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *ran)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Only Faculty or Admin users can view this page")
	assert.Contains(t, rec.Body.String(), "Your role is Student")
}

func TestRequireRole_BrowserWithoutRendererFallsBackToText(t *testing.T) {
	auth := &stubAuthorizer{session: sessionFor(domainauth.RoleDeveloper)}
	h, _, _ := guarded(t, RequireRole(GuardOptions{Auth: auth}, domainauth.RoleAdmin))

	req := httptest.NewRequest(http.MethodGet, "/dashboards/admin", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "your role is Developer")
}

func TestRequireRole_APIInsufficientRoleReturnsRoles(t *testing.T) {
	auth := &stubAuthorizer{session: sessionFor(domainauth.RoleFaculty)}
	h, ran, _ := guarded(t, RequireRole(GuardOptions{Auth: auth}, domainauth.RoleDeveloper))

	req := httptest.NewRequest(http.MethodGet, "/api/dashboards/developer", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.False(t, *ran)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "insufficient_role", body["error"])
	assert.Equal(t, "Developer", body["required_role"])
	assert.Equal(t, "Faculty", body["actual_role"])
}

func TestRequireRole_AdminSatisfiesEveryRole(t *testing.T) {
	for _, role := range domainauth.Roles() {
		t.Run(string(role), func(t *testing.T) {
			auth := &stubAuthorizer{session: sessionFor(domainauth.RoleAdmin)}
			h, ran, _ := guarded(t, RequireRole(GuardOptions{Auth: auth}, role))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboards/x", nil))

			assert.True(t, *ran)
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestRequireRole_BackendFailureReturns500(t *testing.T) {
	auth := &stubAuthorizer{err: errors.New("redis down")}

	t.Run("api", func(t *testing.T) {
		h, ran, _ := guarded(t, RequireRole(GuardOptions{Auth: auth}, domainauth.RoleStudent))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboards/student", nil))

		assert.False(t, *ran)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "redis down")
	})

	t.Run("browser", func(t *testing.T) {
		h, ran, _ := guarded(t, RequireRole(GuardOptions{Auth: auth}, domainauth.RoleStudent))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboards/student", nil))

		assert.False(t, *ran)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequireLogin_PanicsWithoutAuthorizer(t *testing.T) {
	assert.Panics(t, func() { RequireLogin(GuardOptions{}) })
	assert.Panics(t, func() { RequireRole(GuardOptions{}, domainauth.RoleAdmin) })
}

func TestIsBrowserRequest(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		header map[string]string
		want   bool
	}{
		{name: "api path", path: "/api/dashboards/admin", header: map[string]string{"Accept": "text/html"}, want: false},
		{name: "html accept", path: "/dashboards/admin", header: map[string]string{"Accept": "text/html,application/xhtml+xml"}, want: true},
		{name: "json accept", path: "/dashboards/admin", header: map[string]string{"Accept": "application/json"}, want: false},
		{name: "no accept", path: "/", want: true},
		{name: "htmx", path: "/dashboards/admin", header: map[string]string{"Hx-Request": "true", "Accept": "*/*"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, IsBrowserRequest(req))

			var fromCtx bool
			BrowserDetection()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				fromCtx = IsBrowserRequest(r)
			})).ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, fromCtx)
		})
	}
}

func TestRecover(t *testing.T) {
	h := Recover(slog.New(slog.DiscardHandler))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

type recordedMetric struct {
	name string
	tags map[string]string
}

type recordingSink struct {
	mu     sync.Mutex
	counts []recordedMetric
	timers []recordedMetric
}

func (s *recordingSink) Count(name string, _ int64, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = append(s.counts, recordedMetric{name: name, tags: tags})
}

func (s *recordingSink) Timing(name string, _ time.Duration, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers = append(s.timers, recordedMetric{name: name, tags: tags})
}

func TestLogging_RecordsStatusAndRoute(t *testing.T) {
	sink := &recordingSink{}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /things/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := Logging(slog.New(slog.DiscardHandler), sink)(&patternRecorder{mux: mux})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/things/42", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Len(t, sink.counts, 1)
	assert.Equal(t, "http.request", sink.counts[0].name)
	assert.Equal(t, map[string]string{"route": "GET /things/{id}", "method": "GET", "status": "4xx"}, sink.counts[0].tags)
	require.Len(t, sink.timers, 1)
	assert.Equal(t, "http.duration", sink.timers[0].name)
}

func TestLogging_NilSink(t *testing.T) {
	h := Logging(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
