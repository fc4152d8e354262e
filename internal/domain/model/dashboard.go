//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// KPI is a labelled headline number. Value is nil when there is nothing to compute from.
type KPI struct {
	Label string   `json:"label"`
	Value *float64 `json:"value"`
}

// LabelValue is one bar or point in a categorical chart.
type LabelValue struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// StudentDashboard is the personal view for a single student.
type StudentDashboard struct {
	StudentID         string              `json:"student_id"`
	Range             DateRange           `json:"-"`
	Empty             bool                `json:"empty"`
	KPIs              []KPI               `json:"kpis"`
	LatestAttempts    []Attempt           `json:"latest_attempts"`
	ScoreTrend        []MetricPoint       `json:"score_trend"`
	AttemptComparison []LabelValue        `json:"attempt_comparison"`
	RubricMastery     []LabelValue        `json:"rubric_mastery"`
	TimeVsScore       []Attempt           `json:"time_vs_score"`
	CESValues         []float64           `json:"ces_values"`
	EngagementPerDay  []DailyEngagement   `json:"engagement_per_day"`
	Environment       []EnvironmentMetric `json:"environment"`
}

// FacultyDashboard is the cohort view for teaching staff.
type FacultyDashboard struct {
	Range                DateRange                `json:"-"`
	KPIs                 []KPI                    `json:"kpis"`
	ScoresByCase         []CaseScore              `json:"scores_by_case"`
	EngagementPerStudent []StudentEngagementTotal `json:"engagement_per_student"`
	EngagementPerCase    []CaseEngagement         `json:"engagement_per_case"`
	AtRisk               []StudentScore           `json:"at_risk"`
	AtRiskThreshold      float64                  `json:"at_risk_threshold"`
}

// DeveloperDashboard is the platform health view.
type DeveloperDashboard struct {
	Range               DateRange           `json:"-"`
	KPIs                []KPI               `json:"kpis"`
	LatencySummary      []APILatencySummary `json:"latency_summary"`
	ErrorRates          []APIErrorRate      `json:"error_rates"`
	CriticalIncidents   []ReliabilityLog    `json:"critical_incidents"`
	IncidentsByLocation []LocationIncidents `json:"incidents_by_location"`
	Environment         EnvironmentSummary  `json:"environment"`
	Devices             []DeviceTypeCount   `json:"devices"`
	Latest              []ReliabilityLog    `json:"latest"`
}

// AdminDashboard is the platform-wide overview.
type AdminDashboard struct {
	Range           DateRange         `json:"-"`
	KPIs            []KPI             `json:"kpis"`
	Aggregates      []AdminAggregate  `json:"aggregates"`
	DailyEngagement []DailyEngagement `json:"daily_engagement"`
	Metric          string            `json:"metric,omitempty"`
	MetricTrend     []MetricPoint     `json:"metric_trend,omitempty"`
	GeneratedAt     time.Time         `json:"generated_at"`
}
