package httpx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	domainauth "github.com/miva/mind-dashboard/internal/domain/auth"
	"github.com/miva/mind-dashboard/internal/observability/metrics"
)

// Logging returns a middleware that logs HTTP requests and responses and
// emits a request metric when sink is non-nil.
func Logging(logger *slog.Logger, sink metrics.Sink) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx, route := withRouteInfo(r.Context())
			ww := &respWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r.WithContext(ctx))

			elapsed := time.Since(start)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", route.pattern),
				slog.Int("status", ww.status),
				slog.Duration("duration", elapsed),
			)
			metrics.EmitRequest(sink, metrics.RequestMetric{
				Route:    route.pattern,
				Method:   r.Method,
				Status:   ww.status,
				Duration: elapsed,
			})
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *respWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.status = status
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *respWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *respWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler { //nolint:errorlint,err113 // sentinel panic value
						panic(err)
					}
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// browserRequestKey is an unexported context key type for browser request detection.
type browserRequestKey struct{}

// BrowserDetection returns a middleware that detects browser requests vs API requests.
// Downstream handlers use IsBrowserRequest to choose between HTML and JSON responses.
func BrowserDetection() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), browserRequestKey{}, isBrowserRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsBrowserRequest returns true if the current request is from a browser.
func IsBrowserRequest(r *http.Request) bool {
	if isBrowser, ok := r.Context().Value(browserRequestKey{}).(bool); ok {
		return isBrowser
	}
	return isBrowserRequest(r)
}

// isBrowserRequest decides from the path and Accept header:
// /api/ routes never are, htmx requests always are, otherwise text/html wins.
func isBrowserRequest(r *http.Request) bool {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		return false
	}
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	if accept == "" {
		return true
	}
	return strings.Contains(accept, "text/html")
}

// Authorizer answers the access-guard questions for a session token.
type Authorizer interface {
	RequireLogin(ctx context.Context, sessionID string) (*domainauth.Session, error)
	RequireRole(ctx context.Context, sessionID string, required domainauth.Role) (*domainauth.Session, error)
}

// GuardOptions configures the access-guard middleware.
type GuardOptions struct {
	Auth   Authorizer
	Pages  *Pages
	Logger *slog.Logger
}

// RequireLogin returns a middleware that admits only authenticated sessions.
// Browsers are sent to the login prompt; API callers get 401.
func RequireLogin(opts GuardOptions) func(http.Handler) http.Handler {
	if opts.Auth == nil {
		panic("httpx: RequireLogin requires an Authorizer")
	}
	return guard(opts, func(r *http.Request) (*domainauth.Session, error) {
		return opts.Auth.RequireLogin(r.Context(), sessionIDFromRequest(r))
	})
}

// RequireRole returns a middleware that admits only sessions whose role satisfies required.
// Admin satisfies every requirement.
func RequireRole(opts GuardOptions, required domainauth.Role) func(http.Handler) http.Handler {
	if opts.Auth == nil {
		panic("httpx: RequireRole requires an Authorizer")
	}
	return guard(opts, func(r *http.Request) (*domainauth.Session, error) {
		return opts.Auth.RequireRole(r.Context(), sessionIDFromRequest(r), required)
	})
}

// guard runs check once before next. On failure next never runs.
func guard(opts GuardOptions, check func(*http.Request) (*domainauth.Session, error)) func(http.Handler) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := check(r)
			if err != nil {
				denyRequest(w, r, denyParams{err: err, pages: opts.Pages, logger: logger})
				return
			}
			next.ServeHTTP(w, r.WithContext(SetSessionInContext(r.Context(), session)))
		})
	}
}

type denyParams struct {
	err    error
	pages  *Pages
	logger *slog.Logger
}

func denyRequest(w http.ResponseWriter, r *http.Request, p denyParams) {
	browser := IsBrowserRequest(r)

	var roleErr *domainauth.InsufficientRoleError
	switch {
	case errors.Is(p.err, domainauth.ErrNotAuthenticated):
		if browser {
			redirectToLogin(w, r)
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     domainauth.ErrNotAuthenticated,
		})
	case errors.As(p.err, &roleErr):
		if browser {
			p.pages.AccessDenied(w, r, roleErr)
			return
		}
		WriteJSON(w, http.StatusForbidden, map[string]string{
			"error":         "insufficient_role",
			"message":       roleErr.Error(),
			"required_role": string(roleErr.Required),
			"actual_role":   string(roleErr.Actual),
		})
	default:
		p.logger.ErrorContext(r.Context(), "access check failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", p.err),
		)
		if browser {
			p.pages.Error(w, r, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: "internal_error",
			Err:     errors.New("an internal error occurred"),
		})
	}
}

// redirectToLogin sends browsers to the login prompt with the current URL as redirect_uri.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	target := loginURL(redirectPathForRequest(r))
	if IsHTMX(r) {
		w.Header().Set("Hx-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
