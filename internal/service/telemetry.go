package service

import (
	"log/slog"
	"time"

	"github.com/miva/mind-dashboard/internal/observability/metrics"
)

// Telemetry bundles the optional logging and metrics dependencies shared by services.
type Telemetry struct {
	Logger  *slog.Logger
	Metrics metrics.Sink
}

func (t Telemetry) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}

func (t Telemetry) count(name string, tags map[string]string) {
	if t.Metrics == nil {
		return
	}
	t.Metrics.Count(name, 1, tags)
}

func (t Telemetry) timing(name string, d time.Duration, tags map[string]string) {
	if t.Metrics == nil {
		return
	}
	t.Metrics.Timing(name, d, tags)
}
