package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// UserReadRepository reads user lookup data for the submission form.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// Options returns stable id->username pairs for form population.
func (r *UserReadRepository) Options(ctx context.Context) ([]models.Option, error) {
	const query = `
		SELECT user_id AS id, username AS label
		FROM users
		ORDER BY username
	`

	var options []models.Option
	err := r.db.SelectContext(ctx, &options, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(options),
		"error", err,
	)

	return options, err
}

// ResolveUsername returns every user_id whose username matches exactly.
// More than one row means the display name is ambiguous.
func (r *UserReadRepository) ResolveUsername(ctx context.Context, username string) ([]int64, error) {
	const query = `
		SELECT user_id
		FROM users
		WHERE username = $1
	`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", ids,
		"error", err,
	)

	return ids, err
}
