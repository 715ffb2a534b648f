package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// ProblemReadRepository reads the problems listing and tag lookups.
type ProblemReadRepository struct {
	db *sqlx.DB
}

func NewProblemReadRepository(db *sqlx.DB) *ProblemReadRepository {
	return &ProblemReadRepository{db: db}
}

// ListWithPlatform returns all problems joined with their platform name.
func (r *ProblemReadRepository) ListWithPlatform(ctx context.Context) ([]models.ProblemRow, error) {
	const query = `
		SELECT p.problem_id, p.title, p.difficulty,
		       pl.platform_name, p.problem_url
		FROM problems p
		JOIN platforms pl ON p.platform_id = pl.platform_id
		ORDER BY p.problem_id
	`

	var problems []models.ProblemRow
	err := r.db.SelectContext(ctx, &problems, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(problems),
		"error", err,
	)

	return problems, err
}

// IDsByTag returns the ids of problems carrying the given tag.
func (r *ProblemReadRepository) IDsByTag(ctx context.Context, tagName string) ([]int64, error) {
	const query = `
		SELECT p.problem_id
		FROM problems p
		JOIN problem_tag pt ON p.problem_id = pt.problem_id
		JOIN tags t ON pt.tag_id = t.tag_id
		WHERE t.tag_name = $1
	`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, tagName)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tagName},
		"result", ids,
		"error", err,
	)

	return ids, err
}

// TagNames returns the tag names attached to one problem.
func (r *ProblemReadRepository) TagNames(ctx context.Context, problemID int64) ([]string, error) {
	const query = `
		SELECT t.tag_name
		FROM tags t
		JOIN problem_tag pt ON t.tag_id = pt.tag_id
		WHERE pt.problem_id = $1
		ORDER BY t.tag_name
	`

	var names []string
	err := r.db.SelectContext(ctx, &names, query, problemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{problemID},
		"result", names,
		"error", err,
	)

	return names, err
}

// Options returns stable id->title pairs for form population.
func (r *ProblemReadRepository) Options(ctx context.Context) ([]models.Option, error) {
	const query = `
		SELECT problem_id AS id, title AS label
		FROM problems
		ORDER BY title
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

// ResolveTitle returns every problem_id whose title matches exactly.
// More than one row means the display title is ambiguous.
func (r *ProblemReadRepository) ResolveTitle(ctx context.Context, title string) ([]int64, error) {
	const query = `
		SELECT problem_id
		FROM problems
		WHERE title = $1
	`

	var ids []int64
	err := r.db.SelectContext(ctx, &ids, query, title)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{title},
		"result", ids,
		"error", err,
	)

	return ids, err
}
