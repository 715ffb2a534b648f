package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// AdminWriteRepository invokes the store-owned recompute procedure. The call
// runs on the request transaction when one is present in the context.
type AdminWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAdminWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AdminWriteRepository {
	return &AdminWriteRepository{db: db, txGetter: txGetter}
}

// RecomputeUserTagStats calls sp_compute_user_tag_stats. The procedure owns
// the recompute logic; this layer only issues the call.
func (r *AdminWriteRepository) RecomputeUserTagStats(ctx context.Context) error {
	const query = `CALL sp_compute_user_tag_stats()`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	_, err := executor.ExecContext(ctx, query)

	logger.Log.Infow(
		"query", query,
		"error", err,
	)

	return err
}

// AuditReadRepository reads the trigger-maintained audit log.
type AuditReadRepository struct {
	db *sqlx.DB
}

func NewAuditReadRepository(db *sqlx.DB) *AuditReadRepository {
	return &AuditReadRepository{db: db}
}

// Recent returns the newest audit rows, newest first.
func (r *AuditReadRepository) Recent(ctx context.Context, limit int) ([]models.AuditRow, error) {
	const query = `
		SELECT audit_id, table_name, action, row_id, details, changed_at
		FROM audit_log
		ORDER BY changed_at DESC
		LIMIT $1
	`

	var rows []models.AuditRow
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"rows", len(rows),
		"error", err,
	)

	return rows, err
}
