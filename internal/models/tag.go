package models

// TagSummaryRow is one row of vw_tag_summary. AcceptedRate is optional: when
// the view does not supply it, it is computed as accepted/total*100 with 0
// for an empty tag (total_submissions = 0).
type TagSummaryRow struct {
	TagName             string   `json:"tag_name" db:"tag_name"`
	TotalSubmissions    int64    `json:"total_submissions" db:"total_submissions"`
	AcceptedSubmissions int64    `json:"accepted_submissions" db:"accepted_submissions"`
	AcceptedRate        *float64 `json:"accepted_rate" db:"accepted_rate"`
}
