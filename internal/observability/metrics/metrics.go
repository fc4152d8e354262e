// Package metrics emits the dashboard's standard metric shapes.
package metrics

import (
	"strconv"
	"time"

	obserrors "github.com/miva/mind-dashboard/internal/observability/errors"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
	ResultDenied  = "denied"
)

// Sink is the subset of statsd.Sink needed to emit counters and timers.
type Sink interface {
	Count(name string, value int64, tags map[string]string)
	Timing(name string, value time.Duration, tags map[string]string)
}

// DashboardMetric describes one dashboard assembly.
type DashboardMetric struct {
	Kind     string
	Duration time.Duration
	Err      error
}

// EmitDashboardLoad records a dashboard.load counter and timer tagged by kind and result.
func EmitDashboardLoad(sink Sink, in DashboardMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{"kind": in.Kind, "result": ResultSuccess}
	if in.Err != nil {
		tags["result"] = ResultError
		tags["error_class"] = obserrors.Classify(in.Err)
	}

	sink.Count("dashboard.load", 1, tags)
	if in.Duration > 0 {
		sink.Timing("dashboard.duration", in.Duration, cloneTags(tags))
	}
}

// RequestMetric describes one served HTTP request.
type RequestMetric struct {
	Route    string
	Method   string
	Status   int
	Duration time.Duration
}

// EmitRequest records http.request counter and timer tagged by route, method and status class.
func EmitRequest(sink Sink, in RequestMetric) {
	if sink == nil {
		return
	}
	route := in.Route
	if route == "" {
		route = "unmatched"
	}
	tags := map[string]string{
		"route":  route,
		"method": in.Method,
		"status": statusClass(in.Status),
	}
	sink.Count("http.request", 1, tags)
	sink.Timing("http.duration", in.Duration, cloneTags(tags))
}

func statusClass(code int) string {
	if code < 100 || code > 599 {
		return "unknown"
	}
	return strconv.Itoa(code/100) + "xx"
}

// cloneTags creates a shallow copy of a tag map.
func cloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
