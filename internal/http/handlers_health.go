package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/miva/mind-dashboard/internal/core"
)

const (
	healthResponse = `{"status":"ok"}`
	readyTimeout   = 2 * time.Second
)

// healthHandler returns a simple 200 OK status for liveness checks.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, healthResponse); err != nil {
		// Nothing more to do if the client connection is gone.
		return
	}
}

// ReadyHandler pings every named backing service and answers 503 when any is down.
type ReadyHandler struct {
	Checkers map[string]core.HealthChecker
	Logger   *slog.Logger
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	names := make([]string, 0, len(h.Checkers))
	for name := range h.Checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]error, len(names))
	var g errgroup.Group
	for i, name := range names {
		checker := h.Checkers[name]
		g.Go(func() error {
			results[i] = checker.Health(ctx)
			return nil
		})
	}
	_ = g.Wait()

	status := http.StatusOK
	checks := make(map[string]string, len(names))
	for i, name := range names {
		if err := results[i]; err != nil {
			status = http.StatusServiceUnavailable
			checks[name] = "unavailable"
			if h.Logger != nil {
				h.Logger.WarnContext(r.Context(), "readiness check failed",
					slog.String("check", name),
					slog.Any("error", err),
				)
			}
			continue
		}
		checks[name] = "ok"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unavailable"
	}
	WriteJSON(w, status, map[string]any{"status": overall, "checks": checks})
}
