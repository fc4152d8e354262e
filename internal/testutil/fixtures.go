package testutil

import (
	"context"
	"database/sql"
	"fmt"
)

// analyticsSchema mirrors the tables the dashboard reads. Schema ownership sits
// with the ingestion pipeline; this copy only exists so repository tests have
// something to query.
var analyticsSchema = []string{
	`CREATE TABLE attempts (
		attempt_id       TEXT PRIMARY KEY,
		student_id       TEXT NOT NULL,
		case_id          TEXT NOT NULL,
		attempt_number   INTEGER NOT NULL,
		score            NUMERIC NOT NULL,
		duration_seconds NUMERIC NOT NULL,
		ces_value        NUMERIC,
		timestamp        TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE engagement_logs (
		session_id       TEXT NOT NULL,
		student_id       TEXT NOT NULL,
		case_id          TEXT NOT NULL,
		event_type       TEXT NOT NULL,
		duration_seconds NUMERIC NOT NULL,
		timestamp        TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE environment_metrics (
		attempt_id               TEXT NOT NULL,
		student_id               TEXT NOT NULL,
		noise_level              NUMERIC NOT NULL,
		noise_quality_index      NUMERIC NOT NULL,
		internet_latency_ms      NUMERIC NOT NULL,
		internet_stability_score NUMERIC NOT NULL,
		connection_drops         INTEGER NOT NULL,
		device_type              TEXT NOT NULL
	)`,
	`CREATE TABLE rubric_scores (
		attempt_id       TEXT NOT NULL,
		student_id       TEXT NOT NULL,
		rubric_dimension TEXT NOT NULL,
		score            NUMERIC NOT NULL,
		max_score        NUMERIC NOT NULL
	)`,
	`CREATE TABLE system_reliability (
		timestamp  TIMESTAMP NOT NULL,
		api_name   TEXT NOT NULL,
		latency_ms NUMERIC NOT NULL,
		error_rate NUMERIC NOT NULL,
		severity   TEXT NOT NULL,
		location   TEXT NOT NULL
	)`,
	`CREATE TABLE admin_aggregates (
		timestamp    TIMESTAMP NOT NULL,
		metric_name  TEXT NOT NULL,
		metric_value NUMERIC NOT NULL
	)`,
}

// analyticsSeed is the fixture dataset. January 2024 holds four attempts by two
// students (s1: 60, 80, 70; s2: 40); s2 has one more attempt in February.
var analyticsSeed = []string{
	`INSERT INTO attempts VALUES
		('a1', 's1', 'c1', 1, 60, 600, 3.0, '2024-01-10 10:00:00'),
		('a2', 's1', 'c1', 2, 80, 500, 4.0, '2024-01-15 10:00:00'),
		('a3', 's1', 'c2', 1, 70, 900, NULL, '2024-01-20 10:00:00'),
		('a4', 's2', 'c1', 1, 40, 700, 2.0, '2024-01-12 09:00:00'),
		('a5', 's2', 'c2', 1, 30, 800, NULL, '2024-02-05 09:00:00')`,
	`INSERT INTO engagement_logs VALUES
		('sess1', 's1', 'c1', 'case_open', 120, '2024-01-10 09:55:00'),
		('sess1', 's1', 'c1', 'case_submit', 480, '2024-01-10 10:05:00'),
		('sess2', 's2', 'c1', 'case_open', 300, '2024-01-12 08:50:00'),
		('sess3', 's1', 'c2', 'case_open', 600, '2024-01-20 09:50:00')`,
	`INSERT INTO environment_metrics VALUES
		('a1', 's1', 30, 0.8, 40, 0.9, 0, 'laptop'),
		('a4', 's2', 60, 0.5, 120, 0.6, 2, 'tablet'),
		('a5', 's2', 50, 0.6, 100, 0.7, 1, 'laptop')`,
	`INSERT INTO rubric_scores VALUES
		('a2', 's1', 'Communication', 8, 10),
		('a2', 's1', 'Diagnosis', 6, 10)`,
	`INSERT INTO system_reliability VALUES
		('2024-01-10 00:00:00', 'auth', 100, 0.01, 'Low', 'eu-west'),
		('2024-01-11 00:00:00', 'auth', 300, 0.05, 'Critical', 'eu-west'),
		('2024-01-12 00:00:00', 'scoring', 200, 0.02, 'Critical', 'us-east'),
		('2024-02-01 00:00:00', 'scoring', 150, 0.00, 'Low', 'us-east')`,
	`INSERT INTO admin_aggregates VALUES
		('2024-01-10 00:00:00', 'active_users', 10),
		('2024-01-11 00:00:00', 'active_users', 12),
		('2024-01-11 00:00:00', 'avg_session_minutes', 25)`,
}

// LoadAnalyticsFixture creates the analytics tables in the connection's
// search_path and loads the fixture dataset.
func LoadAnalyticsFixture(ctx context.Context, db *sql.DB) error {
	for _, stmt := range analyticsSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create fixture table: %w", err)
		}
	}
	for _, stmt := range analyticsSeed {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed fixture: %w", err)
		}
	}
	return nil
}
