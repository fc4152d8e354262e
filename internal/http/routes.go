// Package httpx serves the login flow, the access-guarded dashboard pages and their JSON APIs.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/observability/metrics"
)

// RouterServices holds everything the HTTP router needs.
type RouterServices struct {
	Auth       AuthServiceInterface
	Dashboards DashboardServiceInterface
	Renderer   *TemplateRenderer

	// Checkers are pinged by /readyz, keyed by a short name such as "postgres".
	Checkers     map[string]core.HealthChecker
	CookieDomain string
	Metrics      metrics.Sink
	Logger       *slog.Logger
}

var errNotFound = errors.New("resource not found")

// NewRouter wires every route behind Recover, Logging and BrowserDetection.
func NewRouter(services RouterServices) http.Handler {
	if services.Auth == nil || services.Dashboards == nil {
		panic("httpx: NewRouter requires Auth and Dashboards")
	}
	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	pages := &Pages{T: services.Renderer, Logger: logger}
	guardOpts := GuardOptions{Auth: services.Auth, Pages: pages, Logger: logger}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: services.CookieDomain})

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("GET /readyz", &ReadyHandler{Checkers: services.Checkers, Logger: logger})

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		Pages:        pages,
		CookieDomain: services.CookieDomain,
		Logger:       logger,
	}
	registerAuthRoutes(mux, authHandlers, csrf)

	dashHandlers := &DashboardHandlers{Svc: services.Dashboards, Pages: pages, Logger: logger}
	registerDashboardRoutes(mux, dashHandlers, dashboardRouteConfig{guard: guardOpts, csrf: csrf})

	mux.Handle("/", csrf(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsBrowserRequest(r) {
			pages.Error(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: errNotFound})
	})))

	var handler http.Handler = &patternRecorder{mux: mux}
	handler = BrowserDetection()(handler)
	handler = Logging(logger, services.Metrics)(handler)
	handler = Recover(logger)(handler)
	return handler
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, csrf func(http.Handler) http.Handler) {
	mux.Handle("GET "+LoginPath, csrf(http.HandlerFunc(h.LoginPage)))
	mux.Handle("POST "+LoginPath, csrf(http.HandlerFunc(h.LoginSubmit)))
	mux.Handle("POST "+LogoutPath, csrf(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /auth/status", http.HandlerFunc(h.Status))
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.APILogin))
}

type dashboardRouteConfig struct {
	guard GuardOptions
	csrf  func(http.Handler) http.Handler
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, cfg dashboardRouteConfig) {
	mux.Handle("GET /{$}", cfg.csrf(RequireLogin(cfg.guard)(http.HandlerFunc(h.Home))))

	for _, v := range dashboardViews {
		gate := RequireRole(cfg.guard, v.Role)
		mux.Handle("GET "+v.Path, cfg.csrf(gate(h.page(v))))
		mux.Handle("GET /api/dashboards/"+v.Kind, gate(h.api(v)))
	}
}

// patternRecorder copies the matched mux pattern into the request's route info
// so the logging middleware can tag by route.
type patternRecorder struct {
	mux *http.ServeMux
}

func (p *patternRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	_, pattern := p.mux.Handler(r)
	if info := routeInfoFromContext(r.Context()); info != nil {
		info.pattern = pattern
	}
	p.mux.ServeHTTP(w, r)
}
