package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miva/mind-dashboard/config"
	"github.com/miva/mind-dashboard/internal/adapters/authroles"
	"github.com/miva/mind-dashboard/internal/adapters/memory"
	redisadapter "github.com/miva/mind-dashboard/internal/adapters/redis"
	"github.com/miva/mind-dashboard/internal/adapters/sharedsecret"
	"github.com/miva/mind-dashboard/internal/observability/metrics"
	"github.com/miva/mind-dashboard/internal/ports"
	"github.com/miva/mind-dashboard/internal/service"
)

const memorySweepInterval = time.Minute

// AuthConfig contains configuration for auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Metrics     metrics.Sink
	Logger      *slog.Logger
}

// BuildAuthService wires the role resolver, shared-secret verifier and session store
// into an AuthService. The memory store's sweeper runs until ctx is done.
func BuildAuthService(ctx context.Context, cfg AuthConfig) (*service.AuthService, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	roles, err := authroles.NewStaticRoleResolver(authroles.Membership{
		Admins:     cfg.Auth.AdminUsers,
		Faculty:    cfg.Auth.FacultyUsers,
		Developers: cfg.Auth.DeveloperUsers,
	}, authroles.Options{RejectOverlap: cfg.Auth.RoleOverlapPolicy == config.OverlapReject})
	if err != nil {
		return nil, fmt.Errorf("build role resolver: %w", err)
	}

	verifier, err := sharedsecret.NewVerifier(cfg.Auth.LoginSecret)
	if err != nil {
		return nil, fmt.Errorf("build credential verifier: %w", err)
	}

	sessions, err := buildSessionStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "auth configured",
		"admins", len(cfg.Auth.AdminUsers),
		"faculty", len(cfg.Auth.FacultyUsers),
		"developers", len(cfg.Auth.DeveloperUsers),
		"session_store", string(cfg.Auth.SessionStore),
		"session_ttl", cfg.Auth.SessionTTL.String(),
		"overlap_policy", string(cfg.Auth.RoleOverlapPolicy),
	)

	return service.NewAuthService(service.AuthServiceOptions{
		Deps: service.AuthDeps{
			Verifier: verifier,
			Sessions: sessions,
			Roles:    roles,
		},
		Config:    service.AuthServiceConfig{SessionTTL: cfg.Auth.SessionTTL},
		Telemetry: service.Telemetry{Logger: logger, Metrics: cfg.Metrics},
	}), nil
}

//nolint:ireturn // the store backend is chosen at runtime.
func buildSessionStore(ctx context.Context, cfg AuthConfig, logger *slog.Logger) (ports.SessionStore, error) {
	switch cfg.Auth.SessionStore {
	case config.SessionStoreMemory:
		logger.WarnContext(ctx, "using in-memory session store; sessions are lost on restart")
		store := memory.NewSessionStore()
		go store.RunSweeper(ctx, memorySweepInterval)
		return store, nil
	case config.SessionStoreRedis, "":
		if cfg.RedisClient == nil {
			return nil, errors.New("redis session store selected but redis client not configured")
		}
		return redisadapter.NewSessionStore(cfg.RedisClient), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Auth.SessionStore)
	}
}
