// Package bootstrap wires configuration, infrastructure and services into a running server.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miva/mind-dashboard/config"
	"github.com/miva/mind-dashboard/internal/core"
	"github.com/miva/mind-dashboard/internal/data"
	"github.com/miva/mind-dashboard/internal/observability/statsd"
	"github.com/miva/mind-dashboard/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Dashboards *service.DashboardService

	// Checkers back the readiness probe.
	Checkers    map[string]core.HealthChecker
	MetricsSink *statsd.Client
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NeedsRedis reports whether any configured component uses Redis.
func NeedsRedis(cfg *config.AppConfig) bool {
	return cfg.Auth.SessionStore == config.SessionStoreRedis || cfg.Cache.Enabled()
}

func buildMetricsSink(logger *slog.Logger, cfg config.ObservabilityMetricsConfig) *statsd.Client {
	client, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.IsEnabled(),
		Address: cfg.StatsdAddress,
		Prefix:  cfg.Prefix,
		Logger:  logger,
	})
	if err != nil {
		// A nil client drops every metric.
		logger.Warn("statsd unavailable; metrics disabled", "error", err, "address", cfg.StatsdAddress)
		return nil
	}
	return client
}

func newAggregateCache(redisClient redis.UniversalClient, cfg config.CacheConfig, logger *slog.Logger) *core.AggregateCache {
	if redisClient == nil || !cfg.Enabled() {
		return nil
	}
	return core.NewAggregateCache(core.AggregateCacheOptions{
		Cache: data.NewRedisCacheRepo(redisClient),
		Config: core.AggregateCacheConfig{
			TTL:       cfg.AggregateTTL,
			KeyPrefix: cfg.KeyPrefix,
		},
		Logger: logger,
	})
}

// NewServices builds every service from the connected infrastructure.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	if deps == nil || deps.Config == nil || deps.DB == nil {
		return ServiceContainer{}, errors.New("service deps require Config and DB")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	sink := buildMetricsSink(logger, cfg.Observability.Metrics)
	tel := service.Telemetry{Logger: logger, Metrics: sink}

	auth, err := BuildAuthService(ctx, AuthConfig{
		Auth:        cfg.Auth,
		RedisClient: deps.RedisClient,
		Metrics:     sink,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, err
	}

	repo := data.NewAnalyticsRepo(deps.DB, cfg.Postgres.QueryTimeout)
	dashboards := service.NewDashboardService(service.DashboardServiceOptions{
		Deps: service.DashboardDeps{
			Repo:  repo,
			Cache: newAggregateCache(deps.RedisClient, cfg.Cache, logger),
		},
		Config: service.DashboardServiceConfig{
			AtRiskThreshold:        cfg.Dashboard.AtRiskThreshold,
			LatestReliabilityLimit: cfg.Dashboard.LatestReliabilityLimit,
		},
		Telemetry: tel,
	})

	checkers := map[string]core.HealthChecker{"postgres": repo}
	if deps.RedisClient != nil {
		checkers["redis"] = data.NewRedisCacheRepo(deps.RedisClient)
	}

	return ServiceContainer{
		Auth:        auth,
		Dashboards:  dashboards,
		Checkers:    checkers,
		MetricsSink: sink,
	}, nil
}

// RunConfig contains everything needed to serve until shutdown.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	Logger   *slog.Logger
}

// RunWithShutdown serves HTTP until ctx is cancelled or the server fails, then
// drains in-flight requests.
func RunWithShutdown(ctx context.Context, cfg *RunConfig) error {
	if cfg == nil || cfg.Config == nil {
		return errors.New("run config missing AppConfig")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server, err := NewHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "starting HTTP server", "addr", server.Addr)
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", serveErr)
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "shutdown signal received")
	case runErr = <-errCh:
	}

	// ctx is already cancelled on the signal path.
	shutdownErr := ShutdownHTTPServer(ShutdownConfig{
		Context: context.WithoutCancel(ctx),
		Server:  server,
		Timeout: shutdownTimeout,
		Logger:  logger,
	})
	if cfg.Services.MetricsSink != nil {
		if cerr := cfg.Services.MetricsSink.Close(); cerr != nil {
			logger.Warn("close metrics sink", "error", cerr)
		}
	}
	return errors.Join(runErr, shutdownErr)
}

const shutdownTimeout = 10 * time.Second
