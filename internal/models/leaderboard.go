package models

// LeaderboardRow is one row of vw_leaderboard. Accuracy is optional: older
// versions of the view do not expose it, in which case it is computed from
// the accepted/total source columns (0 when total is 0 or missing).
type LeaderboardRow struct {
	UserID              int64    `json:"user_id" db:"user_id"`
	Username            string   `json:"username" db:"username"`
	TotalSolved         int64    `json:"total_solved" db:"total_solved"`
	TotalSubmissions    int64    `json:"total_submissions" db:"total_submissions"`
	AcceptedSubmissions int64    `json:"accepted_submissions" db:"accepted_submissions"`
	Accuracy            *float64 `json:"accuracy" db:"accuracy"`
}
