package models

import "time"

// Verdicts accepted by the submission form.
const (
	VerdictAccepted    = "Accepted"
	VerdictWrongAnswer = "Wrong Answer"
	VerdictTLE         = "TLE"
	VerdictRTE         = "RTE"
)

// ValidVerdicts is the fixed choice set for the submission form.
var ValidVerdicts = map[string]struct{}{
	VerdictAccepted:    {},
	VerdictWrongAnswer: {},
	VerdictTLE:         {},
	VerdictRTE:         {},
}

// SubmissionRow is one row of the submissions listing, joined with the
// username and problem title for display.
type SubmissionRow struct {
	SubmissionID   int64     `json:"submission_id" db:"submission_id"`
	Username       string    `json:"username" db:"username"`
	Title          string    `json:"title" db:"title"`
	Verdict        string    `json:"verdict" db:"verdict"`
	SubmissionDate time.Time `json:"submission_date" db:"submission_date"`
	Language       *string   `json:"language,omitempty" db:"language"`
	AttemptNo      *int      `json:"attempt_no,omitempty" db:"attempt_no"`
}

// NewSubmission carries the resolved identifiers for a submission insert.
// Database triggers update counters and the audit log when it is written.
type NewSubmission struct {
	UserID    int64
	ProblemID int64
	Verdict   string
	Language  string
	Notes     string
}

// SubmissionEvent is published to Kafka after a submission is recorded.
type SubmissionEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    int64  `json:"user_id"`
	ProblemID int64  `json:"problem_id"`
	Verdict   string `json:"verdict"`
}
