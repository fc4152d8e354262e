package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/domain/model"
	apperrors "github.com/miva/mind-dashboard/internal/errors"
	"github.com/miva/mind-dashboard/internal/service"
)

// DashboardServiceInterface is the read side behind the dashboard pages.
type DashboardServiceInterface interface {
	Student(ctx context.Context, studentID string, r model.DateRange) (*model.StudentDashboard, error)
	Faculty(ctx context.Context, r model.DateRange) (*model.FacultyDashboard, error)
	Developer(ctx context.Context, r model.DateRange) (*model.DeveloperDashboard, error)
	Admin(ctx context.Context, r model.DateRange, metric string) (*model.AdminDashboard, error)
}

var _ DashboardServiceInterface = (*service.DashboardService)(nil)

// dashboardView ties a dashboard kind to its route, gate and loader.
type dashboardView struct {
	Kind  string
	Page  string
	Title string
	Path  string
	Role  domainauth.Role
	load  func(h *DashboardHandlers, r *http.Request, dr model.DateRange) (any, error)
}

//nolint:gochecknoglobals // static route table
var dashboardViews = []dashboardView{
	{
		Kind: "student", Page: PageStudent, Title: "My progress", Path: "/dashboards/student",
		Role: domainauth.RoleStudent, load: (*DashboardHandlers).loadStudent,
	},
	{
		Kind: "faculty", Page: PageFaculty, Title: "Cohort overview", Path: "/dashboards/faculty",
		Role: domainauth.RoleFaculty, load: (*DashboardHandlers).loadFaculty,
	},
	{
		Kind: "developer", Page: PageDeveloper, Title: "Platform health", Path: "/dashboards/developer",
		Role: domainauth.RoleDeveloper, load: (*DashboardHandlers).loadDeveloper,
	},
	{
		Kind: "admin", Page: PageAdmin, Title: "Administration", Path: "/dashboards/admin",
		Role: domainauth.RoleAdmin, load: (*DashboardHandlers).loadAdmin,
	},
}

// DashboardHandlers serves the four role dashboards as pages and JSON.
type DashboardHandlers struct {
	Svc    DashboardServiceInterface
	Pages  *Pages
	Logger *slog.Logger
}

func (h *DashboardHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// Home lists the dashboards available to the signed-in role.
// GET /.
func (h *DashboardHandlers) Home(w http.ResponseWriter, r *http.Request) {
	data := basePageData(r, PageMeta{Title: "Dashboards", CurrentPage: PageHome})
	h.Pages.Render(w, r, http.StatusOK, data)
}

// page renders one dashboard as HTML.
func (h *DashboardHandlers) page(v dashboardView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		dr, err := model.ParseDateRange(q.Get("start"), q.Get("end"))
		if err != nil {
			h.Pages.Error(w, r, http.StatusBadRequest, err.Error())
			return
		}

		payload, err := v.load(h, r, dr)
		if err != nil {
			h.logger().ErrorContext(r.Context(), "dashboard page failed",
				slog.String("kind", v.Kind),
				slog.Any("error", err),
			)
			h.Pages.Error(w, r, StatusForError(err), apperrors.PublicMessage(err))
			return
		}

		data := basePageData(r, PageMeta{Title: v.Title, CurrentPage: v.Page})
		data["Dashboard"] = payload
		data["Filter"] = filterValues(r)
		data["Path"] = v.Path
		h.Pages.Render(w, r, http.StatusOK, data)
	}
}

// api serves one dashboard as JSON.
func (h *DashboardHandlers) api(v dashboardView) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		dr, err := model.ParseDateRange(q.Get("start"), q.Get("end"))
		if err != nil {
			WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_date_range", Err: err})
			return
		}

		payload, err := v.load(h, r, dr)
		if err != nil {
			h.logger().ErrorContext(r.Context(), "dashboard api failed",
				slog.String("kind", v.Kind),
				slog.Any("error", err),
			)
			WriteAppError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, payload)
	}
}

// filterValues echoes the submitted filter back into the form.
func filterValues(r *http.Request) map[string]string {
	q := r.URL.Query()
	return map[string]string{
		"start":   q.Get("start"),
		"end":     q.Get("end"),
		"student": q.Get("student"),
		"metric":  q.Get("metric"),
	}
}

var errNoSession = errors.New("no session in request context")

// studentFor picks whose dashboard to show. Admins may look at any student.
func studentFor(r *http.Request) (string, error) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		return "", errNoSession
	}
	if s.Role == domainauth.RoleAdmin {
		if id := strings.TrimSpace(r.URL.Query().Get("student")); id != "" {
			return id, nil
		}
	}
	return s.Username, nil
}

func (h *DashboardHandlers) loadStudent(r *http.Request, dr model.DateRange) (any, error) {
	id, err := studentFor(r)
	if err != nil {
		return nil, err
	}
	return h.Svc.Student(r.Context(), id, dr)
}

func (h *DashboardHandlers) loadFaculty(r *http.Request, dr model.DateRange) (any, error) {
	return h.Svc.Faculty(r.Context(), dr)
}

func (h *DashboardHandlers) loadDeveloper(r *http.Request, dr model.DateRange) (any, error) {
	return h.Svc.Developer(r.Context(), dr)
}

func (h *DashboardHandlers) loadAdmin(r *http.Request, dr model.DateRange) (any, error) {
	return h.Svc.Admin(r.Context(), dr, strings.TrimSpace(r.URL.Query().Get("metric")))
}
