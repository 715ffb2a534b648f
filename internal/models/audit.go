package models

import "time"

// AuditRow is one row of the trigger-maintained audit_log table.
type AuditRow struct {
	AuditID   int64     `json:"audit_id" db:"audit_id"`
	TableName string    `json:"table_name" db:"table_name"`
	Action    string    `json:"action" db:"action"`
	RowID     *int64    `json:"row_id" db:"row_id"`
	Details   *string   `json:"details" db:"details"`
	ChangedAt time.Time `json:"changed_at" db:"changed_at"`
}
