package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	minddashboard "github.com/miva/mind-dashboard"
	"github.com/miva/mind-dashboard/config"
	httpx "github.com/miva/mind-dashboard/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// NewHTTPServer builds the router and wraps it in an unstarted *http.Server.
func NewHTTPServer(cfg *HTTPServerConfig) (*http.Server, error) {
	if cfg == nil || cfg.Config == nil {
		return nil, errors.New("http server config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	appCfg := cfg.Config

	templates, err := templateFS(appCfg.IsDev, logger)
	if err != nil {
		return nil, err
	}
	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: templates,
		Logger:     logger,
	})
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	services := httpx.RouterServices{
		Auth:         cfg.Services.Auth,
		Dashboards:   cfg.Services.Dashboards,
		Renderer:     renderer,
		Checkers:     cfg.Services.Checkers,
		CookieDomain: appCfg.HTTP.CookieDomain,
		Logger:       logger,
	}
	if cfg.Services.MetricsSink != nil {
		services.Metrics = cfg.Services.MetricsSink
	}

	return &http.Server{
		Addr:              addrOrDefault(appCfg.HTTP.Addr),
		Handler:           httpx.NewRouter(services),
		ReadTimeout:       appCfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      appCfg.HTTP.WriteTimeout,
		IdleTimeout:       appCfg.HTTP.IdleTimeout,
	}, nil
}

// templateFS serves templates from disk in development so edits show up without a
// rebuild, and from the embedded copy otherwise.
//
//nolint:ireturn // fs.FS is the natural return type.
func templateFS(isDev bool, logger *slog.Logger) (fs.FS, error) {
	if isDev {
		if info, err := os.Stat(httpx.TemplatePathFromRoot); err == nil && info.IsDir() {
			logger.Debug("loading templates from disk", "path", httpx.TemplatePathFromRoot)
			return os.DirFS(httpx.TemplatePathFromRoot), nil
		}
	}
	sub, err := fs.Sub(minddashboard.TemplateFS, httpx.TemplatePathFromRoot)
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

func addrOrDefault(addr string) string {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		return ":8080"
	}
	return addr
}

// ShutdownConfig contains dependencies for HTTP server shutdown.
type ShutdownConfig struct {
	Context context.Context
	Server  *http.Server
	Timeout time.Duration
	Logger  *slog.Logger
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(cfg ShutdownConfig) error {
	if cfg.Server == nil {
		return nil
	}
	ctx := cfg.Context
	if ctx == nil {
		ctx = context.Background()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = shutdownTimeout
	}

	if cfg.Logger != nil {
		cfg.Logger.InfoContext(ctx, "shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := cfg.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	if cfg.Logger != nil {
		cfg.Logger.InfoContext(ctx, "HTTP server stopped")
	}

	return nil
}
