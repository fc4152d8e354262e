package service

import (
	"sort"
	"strconv"
	"time"

	"github.com/miva/mind-dashboard/internal/domain/model"
)

func countKPI(label string, n int64) model.KPI {
	v := float64(n)
	return model.KPI{Label: label, Value: &v}
}

// mean returns nil for an empty input.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// distinctCases counts the case studies that appear in attempts.
func distinctCases(attempts []model.Attempt) int64 {
	seen := make(map[string]struct{}, len(attempts))
	for _, a := range attempts {
		seen[a.CaseID] = struct{}{}
	}
	return int64(len(seen))
}

// studentKPIs scores the latest attempt per case across all time; the
// remaining figures only cover attempts in the selected range.
func studentKPIs(attempts, latest []model.Attempt) []model.KPI {
	latestScores := make([]float64, len(latest))
	for i, a := range latest {
		latestScores[i] = a.Score
	}
	seconds := make([]float64, len(attempts))
	for i, a := range attempts {
		seconds[i] = a.DurationSeconds
	}

	return []model.KPI{
		countKPI("Case studies attempted", distinctCases(attempts)),
		{Label: "Average score (latest attempt)", Value: mean(latestScores)},
		{Label: "Average time on task (secs)", Value: mean(seconds)},
		{Label: "Average CES", Value: mean(cesValues(attempts))},
	}
}

func scoreTrend(attempts []model.Attempt) []model.MetricPoint {
	points := make([]model.MetricPoint, len(attempts))
	for i, a := range attempts {
		points[i] = model.MetricPoint{Timestamp: a.Timestamp, Value: a.Score}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Timestamp.Before(points[j].Timestamp) })
	return points
}

// meanScoreByAttemptNumber returns "Attempt N" bars ordered by N.
func meanScoreByAttemptNumber(attempts []model.Attempt) []model.LabelValue {
	scores := map[int][]float64{}
	for _, a := range attempts {
		scores[a.AttemptNumber] = append(scores[a.AttemptNumber], a.Score)
	}
	numbers := make([]int, 0, len(scores))
	for n := range scores {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	out := make([]model.LabelValue, len(numbers))
	for i, n := range numbers {
		out[i] = model.LabelValue{Label: "Attempt " + strconv.Itoa(n), Value: *mean(scores[n])}
	}
	return out
}

// rubricMastery is the mean score/max_score per dimension. Rows without a max are skipped.
func rubricMastery(rows []model.RubricScore) []model.LabelValue {
	ratios := map[string][]float64{}
	for _, r := range rows {
		if r.MaxScore == 0 {
			continue
		}
		ratios[r.RubricDimension] = append(ratios[r.RubricDimension], r.Score/r.MaxScore)
	}
	dims := make([]string, 0, len(ratios))
	for d := range ratios {
		dims = append(dims, d)
	}
	sort.Strings(dims)

	out := make([]model.LabelValue, len(dims))
	for i, d := range dims {
		out[i] = model.LabelValue{Label: d, Value: *mean(ratios[d])}
	}
	return out
}

func cesValues(attempts []model.Attempt) []float64 {
	var out []float64
	for _, a := range attempts {
		if a.CESValue != nil {
			out = append(out, *a.CESValue)
		}
	}
	return out
}

// engagementPerDay buckets events by UTC calendar day.
func engagementPerDay(logs []model.EngagementLog) []model.DailyEngagement {
	byDay := map[time.Time]*model.DailyEngagement{}
	for _, l := range logs {
		y, m, d := l.Timestamp.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		bucket, ok := byDay[day]
		if !ok {
			bucket = &model.DailyEngagement{Day: day}
			byDay[day] = bucket
		}
		bucket.Events++
		bucket.TotalDuration += l.DurationSeconds
	}

	out := make([]model.DailyEngagement, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// belowThreshold keeps students whose average is under threshold, preserving order.
func belowThreshold(scores []model.StudentScore, threshold float64) []model.StudentScore {
	out := make([]model.StudentScore, 0, len(scores))
	for _, s := range scores {
		if s.AvgScore < threshold {
			out = append(out, s)
		}
	}
	return out
}

func developerKPIs(logs []model.ReliabilityLog, d *model.DeveloperDashboard) []model.KPI {
	latency := make([]float64, len(logs))
	errRate := make([]float64, len(logs))
	for i, l := range logs {
		latency[i] = l.LatencyMS
		errRate[i] = l.ErrorRate
	}

	var netLatency, stability *float64
	if d.Environment.AttemptsSampled > 0 {
		lat, stab := d.Environment.AvgLatencyMS, d.Environment.AvgStability
		netLatency, stability = &lat, &stab
	}

	return []model.KPI{
		countKPI("Critical incidents", int64(len(d.CriticalIncidents))),
		{Label: "Mean API latency (ms)", Value: mean(latency)},
		{Label: "Mean error rate", Value: mean(errRate)},
		{Label: "Avg internet latency (ms)", Value: netLatency},
		{Label: "Avg stability", Value: stability},
	}
}
