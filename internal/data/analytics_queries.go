package data

// Column lists match the db tags on the model row types; pgx.RowToStructByName
// requires an exact correspondence.
const (
	attemptColumns = `attempt_id::text AS attempt_id, student_id::text AS student_id, case_id::text AS case_id,
		attempt_number, score::float8 AS score, duration_seconds::float8 AS duration_seconds,
		ces_value::float8 AS ces_value, timestamp`

	engagementColumns = `session_id::text AS session_id, student_id::text AS student_id, case_id::text AS case_id,
		event_type, duration_seconds::float8 AS duration_seconds, timestamp`

	environmentColumns = `attempt_id::text AS attempt_id, student_id::text AS student_id,
		noise_level::float8 AS noise_level, noise_quality_index::float8 AS noise_quality_index,
		internet_latency_ms::float8 AS internet_latency_ms,
		internet_stability_score::float8 AS internet_stability_score,
		connection_drops, device_type`

	reliabilityColumns = `timestamp, api_name, latency_ms::float8 AS latency_ms,
		error_rate::float8 AS error_rate, severity, location`
)

const (
	attemptsForStudentQuery = `
		SELECT ` + attemptColumns + `
		FROM attempts
		WHERE student_id::text = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp`

	latestAttemptsPerCaseQuery = `
		SELECT DISTINCT ON (case_id) ` + attemptColumns + `
		FROM attempts
		WHERE student_id::text = $1
		ORDER BY case_id, attempt_number DESC, timestamp DESC`

	activeStudentsQuery = `
		SELECT COUNT(DISTINCT student_id)
		FROM attempts
		WHERE timestamp >= $1 AND timestamp < $2`

	attemptCountQuery = `
		SELECT COUNT(*)
		FROM attempts
		WHERE timestamp >= $1 AND timestamp < $2`

	averageScoreQuery = `
		SELECT AVG(score)::float8
		FROM attempts
		WHERE timestamp >= $1 AND timestamp < $2`

	scoresByCaseQuery = `
		SELECT case_id::text AS case_id, AVG(score)::float8 AS avg_score, COUNT(*) AS attempts
		FROM attempts
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY case_id
		ORDER BY case_id`

	studentAverageScoresQuery = `
		SELECT student_id::text AS student_id, AVG(score)::float8 AS avg_score, COUNT(*) AS attempts
		FROM attempts
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY student_id
		ORDER BY avg_score ASC, student_id`

	rubricScoresForStudentQuery = `
		SELECT attempt_id::text AS attempt_id, student_id::text AS student_id, rubric_dimension,
			score::float8 AS score, max_score::float8 AS max_score
		FROM rubric_scores
		WHERE student_id::text = $1
		ORDER BY attempt_id, rubric_dimension`
)

const (
	engagementLogsQuery = `
		SELECT ` + engagementColumns + `
		FROM engagement_logs
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp`

	engagementForStudentQuery = `
		SELECT ` + engagementColumns + `
		FROM engagement_logs
		WHERE student_id::text = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp`

	dailyEngagementQuery = `
		SELECT DATE(timestamp)::timestamp AS day, COUNT(*) AS events,
			COALESCE(SUM(duration_seconds), 0)::float8 AS total_duration_seconds
		FROM engagement_logs
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY DATE(timestamp)
		ORDER BY day`

	engagementPerStudentQuery = `
		SELECT student_id::text AS student_id,
			COALESCE(SUM(duration_seconds), 0)::float8 AS total_duration_seconds,
			COUNT(DISTINCT DATE(timestamp)) AS days_engaged
		FROM engagement_logs
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY student_id
		ORDER BY total_duration_seconds DESC, student_id`

	engagementPerCaseQuery = `
		SELECT case_id::text AS case_id,
			COALESCE(SUM(duration_seconds), 0)::float8 AS total_time_seconds,
			COUNT(DISTINCT student_id) AS distinct_users
		FROM engagement_logs
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY case_id
		ORDER BY total_time_seconds DESC, case_id`
)

const (
	environmentForStudentQuery = `
		SELECT ` + environmentColumns + `
		FROM environment_metrics
		WHERE student_id::text = $1
		ORDER BY attempt_id`

	environmentSummaryQuery = `
		SELECT
			COALESCE(AVG(e.noise_level), 0)::float8 AS avg_noise,
			COALESCE(AVG(e.noise_quality_index), 0)::float8 AS noise_quality,
			COALESCE(AVG(e.internet_latency_ms), 0)::float8 AS avg_latency_ms,
			COALESCE(AVG(e.internet_stability_score), 0)::float8 AS avg_stability,
			COALESCE(AVG(e.connection_drops), 0)::float8 AS avg_drops,
			COUNT(*) AS attempts_sampled
		FROM environment_metrics e
		JOIN attempts a ON a.attempt_id = e.attempt_id
		WHERE a.timestamp >= $1 AND a.timestamp < $2`

	deviceTypeDistributionQuery = `
		SELECT e.device_type, COUNT(*) AS count
		FROM environment_metrics e
		JOIN attempts a ON a.attempt_id = e.attempt_id
		WHERE a.timestamp >= $1 AND a.timestamp < $2
		GROUP BY e.device_type
		ORDER BY count DESC, e.device_type`
)

const (
	reliabilityLogsQuery = `
		SELECT ` + reliabilityColumns + `
		FROM system_reliability
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp`

	latestReliabilityQuery = `
		SELECT ` + reliabilityColumns + `
		FROM system_reliability
		ORDER BY timestamp DESC
		LIMIT $1`

	apiLatencySummaryQuery = `
		SELECT api_name,
			AVG(latency_ms)::float8 AS avg_latency_ms,
			PERCENTILE_CONT(0.50) WITHIN GROUP (ORDER BY latency_ms)::float8 AS p50,
			PERCENTILE_CONT(0.95) WITHIN GROUP (ORDER BY latency_ms)::float8 AS p95
		FROM system_reliability
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY api_name
		ORDER BY api_name`

	errorRateByAPIQuery = `
		SELECT api_name, AVG(error_rate)::float8 AS avg_error
		FROM system_reliability
		WHERE timestamp >= $1 AND timestamp < $2
		GROUP BY api_name
		ORDER BY avg_error DESC, api_name`

	criticalIncidentsQuery = `
		SELECT ` + reliabilityColumns + `
		FROM system_reliability
		WHERE severity = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp DESC`

	incidentsByLocationQuery = `
		SELECT location, COUNT(*) AS incidents
		FROM system_reliability
		WHERE severity = $1 AND timestamp >= $2 AND timestamp < $3
		GROUP BY location
		ORDER BY incidents DESC, location`
)

const (
	adminAggregatesQuery = `
		SELECT timestamp, metric_name, metric_value::float8 AS metric_value
		FROM admin_aggregates
		WHERE timestamp >= $1 AND timestamp < $2
		ORDER BY timestamp`

	adminMetricTrendQuery = `
		SELECT timestamp, metric_value::float8 AS value
		FROM admin_aggregates
		WHERE metric_name = $1
		ORDER BY timestamp`
)
