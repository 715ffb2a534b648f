package models

// DashboardMetrics holds the metric tiles shown on the dashboard.
// AcceptRate is 0 when there are no submissions.
type DashboardMetrics struct {
	Users       int64   `json:"users"`
	Problems    int64   `json:"problems"`
	Submissions int64   `json:"submissions"`
	Accepted    int64   `json:"accepted"`
	AcceptRate  float64 `json:"accept_rate"`
}

// WeeklyBucket is one bar of the submissions-per-week chart.
type WeeklyBucket struct {
	Week        string `json:"week" db:"week"`
	Submissions int64  `json:"submissions" db:"submissions"`
}
