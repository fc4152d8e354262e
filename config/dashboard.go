package config

// DashboardConfig tunes dashboard computations.
type DashboardConfig struct {
	// AtRiskThreshold is the average score below which a student is flagged on the faculty view.
	AtRiskThreshold float64 `env:"AT_RISK_THRESHOLD" envDefault:"50"`

	// LatestReliabilityLimit caps the "latest readings" table on the developer view.
	LatestReliabilityLimit int `env:"LATEST_RELIABILITY_LIMIT" envDefault:"20"`
}

// Sanitize keeps thresholds inside the score range.
func (d *DashboardConfig) Sanitize() {
	if d.AtRiskThreshold < 0 {
		d.AtRiskThreshold = 0
	}
	if d.AtRiskThreshold > 100 {
		d.AtRiskThreshold = 100
	}
	if d.LatestReliabilityLimit <= 0 || d.LatestReliabilityLimit > 500 {
		d.LatestReliabilityLimit = 20
	}
}
