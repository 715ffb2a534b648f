package models

// ProblemRow is one row of the problems listing, joined with the platform name.
type ProblemRow struct {
	ProblemID    int64   `json:"problem_id" db:"problem_id"`
	Title        string  `json:"title" db:"title"`
	Difficulty   *string `json:"difficulty" db:"difficulty"`
	PlatformName string  `json:"platform_name" db:"platform_name"`
	ProblemURL   *string `json:"problem_url" db:"problem_url"`
}

// Option is a stable identifier-to-label pair used to populate form
// selections. Identifiers, not display strings, are the authoritative form
// value.
type Option struct {
	ID    int64  `json:"id" db:"id"`
	Label string `json:"label" db:"label"`
}
