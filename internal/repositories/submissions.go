package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// SubmissionReadRepository reads the submissions listing.
type SubmissionReadRepository struct {
	db *sqlx.DB
}

func NewSubmissionReadRepository(db *sqlx.DB) *SubmissionReadRepository {
	return &SubmissionReadRepository{db: db}
}

// Recent returns the newest submissions joined with username and title,
// newest first.
func (r *SubmissionReadRepository) Recent(ctx context.Context, limit int) ([]models.SubmissionRow, error) {
	const query = `
		SELECT s.submission_id, u.username, p.title, s.verdict, s.submission_date,
		       s.language, s.attempt_no
		FROM submissions s
		JOIN users u ON s.user_id = u.user_id
		JOIN problems p ON s.problem_id = p.problem_id
		ORDER BY s.submission_date DESC
		LIMIT $1
	`

	var rows []models.SubmissionRow
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"rows", len(rows),
		"error", err,
	)

	return rows, err
}

// SubmissionWriteRepository handles the submission insert. The statement runs
// on the request transaction when one is present in the context, so the
// insert plus any database-side trigger effects commit or roll back together.
type SubmissionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSubmissionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SubmissionWriteRepository {
	return &SubmissionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one submission row.
func (r *SubmissionWriteRepository) Save(ctx context.Context, sub models.NewSubmission) error {
	const query = `
		INSERT INTO submissions (user_id, problem_id, verdict, language, notes)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{sub.UserID, sub.ProblemID, sub.Verdict, sub.Language, sub.Notes}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
