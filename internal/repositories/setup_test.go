package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// schemaStatements mirrors the production schema: tables, the audit trigger,
// the recompute procedure and both views. Statements run one at a time
// because the functions contain their own semicolons.
var schemaStatements = []string{
	`CREATE TABLE platforms (
		platform_id SERIAL PRIMARY KEY,
		platform_name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE users (
		user_id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE problems (
		problem_id BIGSERIAL PRIMARY KEY,
		platform_id INT NOT NULL REFERENCES platforms(platform_id),
		title VARCHAR(255) NOT NULL,
		difficulty VARCHAR(20),
		problem_url TEXT
	)`,
	`CREATE TABLE tags (
		tag_id SERIAL PRIMARY KEY,
		tag_name VARCHAR(50) NOT NULL UNIQUE
	)`,
	`CREATE TABLE problem_tag (
		problem_id BIGINT NOT NULL REFERENCES problems(problem_id),
		tag_id INT NOT NULL REFERENCES tags(tag_id),
		PRIMARY KEY (problem_id, tag_id)
	)`,
	`CREATE TABLE submissions (
		submission_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id),
		problem_id BIGINT NOT NULL REFERENCES problems(problem_id),
		verdict VARCHAR(20) NOT NULL,
		language VARCHAR(50),
		notes TEXT,
		attempt_no INT,
		submission_date TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE audit_log (
		audit_id BIGSERIAL PRIMARY KEY,
		table_name VARCHAR(50) NOT NULL,
		action VARCHAR(20) NOT NULL,
		row_id BIGINT,
		details TEXT,
		changed_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE user_tag_stats (
		user_id BIGINT NOT NULL,
		tag_id INT NOT NULL,
		solved INT NOT NULL,
		PRIMARY KEY (user_id, tag_id)
	)`,
	`CREATE FUNCTION log_submission() RETURNS trigger AS $$
	BEGIN
		INSERT INTO audit_log (table_name, action, row_id, details)
		VALUES ('submissions', 'INSERT', NEW.submission_id, NEW.verdict);
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,
	`CREATE TRIGGER submissions_audit AFTER INSERT ON submissions
	FOR EACH ROW EXECUTE FUNCTION log_submission()`,
	`CREATE PROCEDURE sp_compute_user_tag_stats() LANGUAGE SQL AS $$
		DELETE FROM user_tag_stats;
		INSERT INTO user_tag_stats (user_id, tag_id, solved)
		SELECT s.user_id, pt.tag_id, COUNT(DISTINCT s.problem_id)
		FROM submissions s
		JOIN problem_tag pt ON s.problem_id = pt.problem_id
		WHERE s.verdict = 'Accepted'
		GROUP BY s.user_id, pt.tag_id;
	$$`,
	`CREATE VIEW vw_leaderboard AS
	SELECT u.user_id, u.username,
		COUNT(DISTINCT s.problem_id) FILTER (WHERE s.verdict = 'Accepted') AS total_solved,
		COUNT(s.submission_id) AS total_submissions,
		COUNT(s.submission_id) FILTER (WHERE s.verdict = 'Accepted') AS accepted_submissions,
		CASE WHEN COUNT(s.submission_id) = 0 THEN NULL
			ELSE COUNT(s.submission_id) FILTER (WHERE s.verdict = 'Accepted')::float / COUNT(s.submission_id) * 100
		END AS accuracy
	FROM users u
	LEFT JOIN submissions s ON u.user_id = s.user_id
	GROUP BY u.user_id, u.username`,
	`CREATE VIEW vw_tag_summary AS
	SELECT t.tag_name,
		COUNT(s.submission_id) AS total_submissions,
		COUNT(s.submission_id) FILTER (WHERE s.verdict = 'Accepted') AS accepted_submissions,
		CASE WHEN COUNT(s.submission_id) = 0 THEN NULL
			ELSE COUNT(s.submission_id) FILTER (WHERE s.verdict = 'Accepted')::float / COUNT(s.submission_id) * 100
		END AS accepted_rate
	FROM tags t
	LEFT JOIN problem_tag pt ON t.tag_id = pt.tag_id
	LEFT JOIN submissions s ON pt.problem_id = s.problem_id
	GROUP BY t.tag_name`,
}

func setupTrackerPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	for _, stmt := range schemaStatements {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

// seedBase inserts one platform, two users, two problems and two tags and
// returns nothing: the serial ids are deterministic on a fresh schema.
func seedBase(t *testing.T, db *sqlx.DB) {
	t.Helper()

	stmts := []string{
		`INSERT INTO platforms (platform_name) VALUES ('LeetCode'), ('Codeforces')`,
		`INSERT INTO users (username) VALUES ('alice'), ('bob')`,
		`INSERT INTO problems (platform_id, title, difficulty) VALUES
			(1, 'Two Sum', 'Easy'),
			(2, 'Theatre Square', 'Medium')`,
		`INSERT INTO tags (tag_name) VALUES ('arrays'), ('math')`,
		`INSERT INTO problem_tag (problem_id, tag_id) VALUES (1, 1), (2, 2)`,
	}
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		assert.NoError(t, err)
	}
}
