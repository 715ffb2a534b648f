package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// LeaderboardReadRepository reads the database-maintained leaderboard view.
type LeaderboardReadRepository struct {
	db *sqlx.DB
}

func NewLeaderboardReadRepository(db *sqlx.DB) *LeaderboardReadRepository {
	return &LeaderboardReadRepository{db: db}
}

// List returns every row of vw_leaderboard. The accuracy column is nullable:
// the view may predate it, in which case the service computes the fallback.
func (r *LeaderboardReadRepository) List(ctx context.Context) ([]models.LeaderboardRow, error) {
	const query = `
		SELECT user_id, username, total_solved,
		       total_submissions, accepted_submissions, accuracy
		FROM vw_leaderboard
	`

	var rows []models.LeaderboardRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	return rows, err
}
