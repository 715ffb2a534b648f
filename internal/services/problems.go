package services

import (
	"context"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// ProblemReader reads the problems listing and tag lookups.
type ProblemReader interface {
	ListWithPlatform(ctx context.Context) ([]models.ProblemRow, error)
	IDsByTag(ctx context.Context, tagName string) ([]int64, error)
	TagNames(ctx context.Context, problemID int64) ([]string, error)
}

// ProblemService applies the platform, tag and search filters to the
// problems listing.
type ProblemService struct {
	reader ProblemReader
}

// NewProblemService creates a new ProblemService.
func NewProblemService(reader ProblemReader) *ProblemService {
	return &ProblemService{reader: reader}
}

// List returns the problems listing. Platform is an equality filter with the
// "All" sentinel, tag restricts to problems carrying the tag, and search is a
// case-insensitive substring match on the title.
func (s *ProblemService) List(ctx context.Context, platform, tag, search string) ([]models.ProblemRow, error) {
	rows, err := s.reader.ListWithPlatform(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read problems", "err", err)
		return nil, err
	}

	rows = filterRows(rows, func(row models.ProblemRow) bool {
		return matchCategory(row.PlatformName, platform)
	})

	if tag != "" && tag != CategoryAll {
		ids, err := s.reader.IDsByTag(ctx, tag)
		if err != nil {
			logger.Log.Errorw("failed to read problem ids for tag", "tag", tag, "err", err)
			return nil, err
		}
		tagged := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			tagged[id] = struct{}{}
		}
		rows = filterRows(rows, func(row models.ProblemRow) bool {
			_, ok := tagged[row.ProblemID]
			return ok
		})
	}

	if search != "" {
		rows = filterRows(rows, func(row models.ProblemRow) bool {
			return matchFold(&row.Title, search)
		})
	}

	return rows, nil
}

// Tags returns the tag names attached to one problem.
func (s *ProblemService) Tags(ctx context.Context, problemID int64) ([]string, error) {
	names, err := s.reader.TagNames(ctx, problemID)
	if err != nil {
		logger.Log.Errorw("failed to read tags for problem", "problemID", problemID, "err", err)
		return nil, err
	}
	return names, nil
}
