package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// DashboardReadRepository reads the aggregate counts and the weekly trend for
// the dashboard tiles and chart.
type DashboardReadRepository struct {
	db *sqlx.DB
}

func NewDashboardReadRepository(db *sqlx.DB) *DashboardReadRepository {
	return &DashboardReadRepository{db: db}
}

func (r *DashboardReadRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var cnt int64
	err := r.db.GetContext(ctx, &cnt, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", cnt,
		"error", err,
	)

	return cnt, err
}

// CountUsers returns the total number of users.
func (r *DashboardReadRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountProblems returns the total number of problems.
func (r *DashboardReadRepository) CountProblems(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM problems`)
}

// CountSubmissions returns the total number of submissions.
func (r *DashboardReadRepository) CountSubmissions(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM submissions`)
}

// CountAccepted returns the number of accepted submissions.
func (r *DashboardReadRepository) CountAccepted(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM submissions WHERE verdict = 'Accepted'`)
}

// WeeklyTrend returns submission counts bucketed by ISO week for the last
// `weeks` weeks, oldest bucket first.
func (r *DashboardReadRepository) WeeklyTrend(ctx context.Context, weeks int) ([]models.WeeklyBucket, error) {
	const query = `
		SELECT to_char(date_trunc('week', submission_date), 'IYYYIW') AS week,
		       COUNT(*) AS submissions
		FROM submissions
		WHERE submission_date >= CURRENT_DATE - $1 * INTERVAL '1 week'
		GROUP BY week
		ORDER BY week
	`

	var buckets []models.WeeklyBucket
	err := r.db.SelectContext(ctx, &buckets, query, weeks)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{weeks},
		"rows", len(buckets),
		"error", err,
	)

	return buckets, err
}
