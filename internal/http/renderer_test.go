package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/domain/model"
)

func TestNewTemplateRenderer_RequiresFS(t *testing.T) {
	_, err := NewTemplateRenderer(TemplateRendererConfig{})
	assert.Error(t, err)
}

func TestNewTemplateRenderer_ParseError(t *testing.T) {
	fsys := fstest.MapFS{"layout.tmpl": {Data: []byte(`{{define "layout"}}{{.Missing`)}}
	_, err := NewTemplateRenderer(TemplateRendererConfig{TemplateFS: fsys})
	assert.Error(t, err)
}

func TestTemplateRenderer_RendersEveryPage(t *testing.T) {
	tr := newTestRenderer(t)
	admin := sessionFor(domainauth.RoleAdmin)
	score := 61.25

	pages := []struct {
		page string
		data map[string]any
		want string
	}{
		{page: PageLogin, data: map[string]any{"Error": "Invalid username or password.", "RedirectURI": "/"}, want: "Invalid username or password."},
		{page: PageHome, want: "Welcome, admin-user"},
		{page: PageError, data: map[string]any{"Error": "boom"}, want: "boom"},
		{page: PageAccessDenied, data: map[string]any{"RequiredRole": domainauth.RoleFaculty, "ActualRole": domainauth.RoleStudent}, want: "Your role is Student"},
		{page: PageStudent, data: map[string]any{"Dashboard": &model.StudentDashboard{StudentID: "s1", Empty: true}}, want: "No attempts found for the selected date range."},
		{page: PageFaculty, data: map[string]any{"Dashboard": &model.FacultyDashboard{KPIs: []model.KPI{{Label: "Average score", Value: &score}}}}, want: "61.25"},
		{page: PageDeveloper, data: map[string]any{"Dashboard": &model.DeveloperDashboard{KPIs: []model.KPI{{Label: "Avg stability"}}}}, want: "n/a"},
		{page: PageAdmin, data: map[string]any{"Dashboard": &model.AdminDashboard{Metric: "active_users"}}, want: "No samples for this metric."},
	}

	for _, tt := range pages {
		t.Run(tt.page, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(SetSessionInContext(req.Context(), admin))
			req = req.WithContext(setCSRFTokenInContext(req.Context(), "tok"))

			data := basePageData(req, PageMeta{Title: "Test", CurrentPage: tt.page})
			data["Filter"] = map[string]string{}
			data["Path"] = "/dashboards/" + tt.page
			for k, v := range tt.data {
				data[k] = v
			}

			rec := httptest.NewRecorder()
			require.NoError(t, tr.RenderFull(rec, http.StatusOK, data))
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.Contains(t, rec.Body.String(), `name="csrf_token" value="tok"`)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	v := 3.0
	assert.Equal(t, "n/a", formatKPI(nil))
	assert.Equal(t, "3", formatKPI(&v))
	assert.Equal(t, "0.33", formatNumber(1.0/3))
	assert.Equal(t, "A", initial(" alice"))
	assert.Equal(t, "?", initial(""))
}

func TestContentTemplateFor(t *testing.T) {
	assert.Equal(t, "faculty-content", ContentTemplateFor(PageFaculty))
	assert.Equal(t, "error-content", ContentTemplateFor("unknown"))
}
