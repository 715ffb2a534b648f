package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// TagReadRepository reads tag lookups and the tag summary view.
type TagReadRepository struct {
	db *sqlx.DB
}

func NewTagReadRepository(db *sqlx.DB) *TagReadRepository {
	return &TagReadRepository{db: db}
}

// Names returns all tag names for the sidebar filter.
func (r *TagReadRepository) Names(ctx context.Context) ([]string, error) {
	const query = `
		SELECT tag_name
		FROM tags
		ORDER BY tag_name
	`

	var names []string
	err := r.db.SelectContext(ctx, &names, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(names),
		"error", err,
	)

	return names, err
}

// Summary returns every row of vw_tag_summary. The accepted_rate column is
// nullable: the view may predate it, in which case the service computes the
// fallback.
func (r *TagReadRepository) Summary(ctx context.Context) ([]models.TagSummaryRow, error) {
	const query = `
		SELECT tag_name, total_submissions, accepted_submissions, accepted_rate
		FROM vw_tag_summary
	`

	var rows []models.TagSummaryRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(rows),
		"error", err,
	)

	return rows, err
}

// PlatformReadRepository reads platform names for the sidebar filter.
type PlatformReadRepository struct {
	db *sqlx.DB
}

func NewPlatformReadRepository(db *sqlx.DB) *PlatformReadRepository {
	return &PlatformReadRepository{db: db}
}

// Names returns all platform names.
func (r *PlatformReadRepository) Names(ctx context.Context) ([]string, error) {
	const query = `
		SELECT platform_name
		FROM platforms
		ORDER BY platform_name
	`

	var names []string
	err := r.db.SelectContext(ctx, &names, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(names),
		"error", err,
	)

	return names, err
}
