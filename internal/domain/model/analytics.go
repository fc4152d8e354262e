// Package model defines the analytics records read from the store and the dashboard payloads built from them.
package model

import (
	"errors"
	"time"
)

// DateLayout is the calendar-day format accepted by date filters.
const DateLayout = "2006-01-02"

var (
	// DefaultRangeStart is used when a filter omits its start day.
	DefaultRangeStart = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	// DefaultRangeEnd is used when a filter omits its end day.
	DefaultRangeEnd = time.Date(2999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// AllTime is the unbounded range.
func AllTime() DateRange {
	return DateRange{Start: DefaultRangeStart, End: DefaultRangeEnd}
}

// ParseDateRange parses YYYY-MM-DD bounds, defaulting blanks to the unbounded range.
func ParseDateRange(start, end string) (DateRange, error) {
	r := AllTime()
	if start != "" {
		t, err := time.Parse(DateLayout, start)
		if err != nil {
			return DateRange{}, errors.New("start must be a date in YYYY-MM-DD form")
		}
		r.Start = t
	}
	if end != "" {
		t, err := time.Parse(DateLayout, end)
		if err != nil {
			return DateRange{}, errors.New("end must be a date in YYYY-MM-DD form")
		}
		r.End = t
	}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// Validate rejects ranges whose start falls after their end.
func (r DateRange) Validate() error {
	if r.Start.After(r.End) {
		return errors.New("start date must not be after end date")
	}
	return nil
}

// Bounds returns the half-open timestamp interval [start 00:00, end+1 day 00:00).
func (r DateRange) Bounds() (from, until time.Time) {
	from = truncateDay(r.Start)
	until = truncateDay(r.End).AddDate(0, 0, 1)
	return from, until
}

// Key renders the range for cache keys and templates.
func (r DateRange) Key() string {
	return r.Start.Format(DateLayout) + ":" + r.End.Format(DateLayout)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Attempt is one case-study attempt by a student.
type Attempt struct {
	AttemptID       string    `json:"attempt_id" db:"attempt_id"`
	StudentID       string    `json:"student_id" db:"student_id"`
	CaseID          string    `json:"case_id" db:"case_id"`
	AttemptNumber   int       `json:"attempt_number" db:"attempt_number"`
	Score           float64   `json:"score" db:"score"`
	DurationSeconds float64   `json:"duration_seconds" db:"duration_seconds"`
	CESValue        *float64  `json:"ces_value,omitempty" db:"ces_value"`
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`
}

// EngagementLog is one engagement event.
type EngagementLog struct {
	SessionID       string    `json:"session_id" db:"session_id"`
	StudentID       string    `json:"student_id" db:"student_id"`
	CaseID          string    `json:"case_id" db:"case_id"`
	EventType       string    `json:"event_type" db:"event_type"`
	DurationSeconds float64   `json:"duration_seconds" db:"duration_seconds"`
	Timestamp       time.Time `json:"timestamp" db:"timestamp"`
}

// EnvironmentMetric describes the learning environment captured for one attempt.
type EnvironmentMetric struct {
	AttemptID              string  `json:"attempt_id" db:"attempt_id"`
	StudentID              string  `json:"student_id" db:"student_id"`
	NoiseLevel             float64 `json:"noise_level" db:"noise_level"`
	NoiseQualityIndex      float64 `json:"noise_quality_index" db:"noise_quality_index"`
	InternetLatencyMS      float64 `json:"internet_latency_ms" db:"internet_latency_ms"`
	InternetStabilityScore float64 `json:"internet_stability_score" db:"internet_stability_score"`
	ConnectionDrops        int     `json:"connection_drops" db:"connection_drops"`
	DeviceType             string  `json:"device_type" db:"device_type"`
}

// RubricScore is a per-dimension rubric grade.
type RubricScore struct {
	AttemptID       string  `json:"attempt_id" db:"attempt_id"`
	StudentID       string  `json:"student_id" db:"student_id"`
	RubricDimension string  `json:"rubric_dimension" db:"rubric_dimension"`
	Score           float64 `json:"score" db:"score"`
	MaxScore        float64 `json:"max_score" db:"max_score"`
}

// ReliabilityLog is a single platform reliability reading.
type ReliabilityLog struct {
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	APIName   string    `json:"api_name" db:"api_name"`
	LatencyMS float64   `json:"latency_ms" db:"latency_ms"`
	ErrorRate float64   `json:"error_rate" db:"error_rate"`
	Severity  string    `json:"severity" db:"severity"`
	Location  string    `json:"location" db:"location"`
}

// SeverityCritical marks reliability readings counted as incidents.
const SeverityCritical = "Critical"

// AdminAggregate is a precomputed platform metric.
type AdminAggregate struct {
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
	MetricName  string    `json:"metric_name" db:"metric_name"`
	MetricValue float64   `json:"metric_value" db:"metric_value"`
}

// MetricPoint is a single (time, value) sample.
type MetricPoint struct {
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	Value     float64   `json:"value" db:"value"`
}

// DailyEngagement counts events and time per calendar day.
type DailyEngagement struct {
	Day           time.Time `json:"day" db:"day"`
	Events        int64     `json:"events" db:"events"`
	TotalDuration float64   `json:"total_duration_seconds" db:"total_duration_seconds"`
}

// StudentEngagementTotal totals one student's engagement.
type StudentEngagementTotal struct {
	StudentID            string  `json:"student_id" db:"student_id"`
	TotalDurationSeconds float64 `json:"total_duration_seconds" db:"total_duration_seconds"`
	DaysEngaged          int64   `json:"days_engaged" db:"days_engaged"`
}

// CaseEngagement totals engagement for one case study.
type CaseEngagement struct {
	CaseID           string  `json:"case_id" db:"case_id"`
	TotalTimeSeconds float64 `json:"total_time_seconds" db:"total_time_seconds"`
	DistinctUsers    int64   `json:"distinct_users" db:"distinct_users"`
}

// EnvironmentSummary averages environment metrics over a range.
type EnvironmentSummary struct {
	AvgNoise        float64 `json:"avg_noise" db:"avg_noise"`
	NoiseQuality    float64 `json:"noise_quality" db:"noise_quality"`
	AvgLatencyMS    float64 `json:"avg_latency_ms" db:"avg_latency_ms"`
	AvgStability    float64 `json:"avg_stability" db:"avg_stability"`
	AvgDrops        float64 `json:"avg_drops" db:"avg_drops"`
	AttemptsSampled int64   `json:"attempts_sampled" db:"attempts_sampled"`
}

// DeviceTypeCount counts attempts per device type.
type DeviceTypeCount struct {
	DeviceType string `json:"device_type" db:"device_type"`
	Count      int64  `json:"count" db:"count"`
}

// APILatencySummary summarizes latency for one API.
type APILatencySummary struct {
	APIName      string  `json:"api_name" db:"api_name"`
	AvgLatencyMS float64 `json:"avg_latency_ms" db:"avg_latency_ms"`
	P50          float64 `json:"p50" db:"p50"`
	P95          float64 `json:"p95" db:"p95"`
}

// APIErrorRate is the mean error rate for one API.
type APIErrorRate struct {
	APIName  string  `json:"api_name" db:"api_name"`
	AvgError float64 `json:"avg_error" db:"avg_error"`
}

// LocationIncidents counts critical incidents per location.
type LocationIncidents struct {
	Location  string `json:"location" db:"location"`
	Incidents int64  `json:"incidents" db:"incidents"`
}

// StudentScore is a student's mean score over a range.
type StudentScore struct {
	StudentID string  `json:"student_id" db:"student_id"`
	AvgScore  float64 `json:"avg_score" db:"avg_score"`
	Attempts  int64   `json:"attempts" db:"attempts"`
}

// CaseScore is the mean score for a case study over a range.
type CaseScore struct {
	CaseID   string  `json:"case_id" db:"case_id"`
	AvgScore float64 `json:"avg_score" db:"avg_score"`
	Attempts int64   `json:"attempts" db:"attempts"`
}
