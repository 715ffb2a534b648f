package services

import (
	"context"
	"sort"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// TagSummaryReader reads the tag summary view.
type TagSummaryReader interface {
	Summary(ctx context.Context) ([]models.TagSummaryRow, error)
}

// TagAnalysisService filters and normalizes the tag summary.
type TagAnalysisService struct {
	reader TagSummaryReader
}

// NewTagAnalysisService creates a new TagAnalysisService.
func NewTagAnalysisService(reader TagSummaryReader) *TagAnalysisService {
	return &TagAnalysisService{reader: reader}
}

// Summary returns the tag summary, optionally restricted to one tag, with
// the accepted_rate fallback applied (0 for an empty tag) and rows ordered
// by accepted_rate desc for the chart.
func (s *TagAnalysisService) Summary(ctx context.Context, tag string) ([]models.TagSummaryRow, error) {
	rows, err := s.reader.Summary(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read tag summary", "err", err)
		return nil, err
	}

	rows = filterRows(rows, func(row models.TagSummaryRow) bool {
		return matchCategory(row.TagName, tag)
	})

	for i := range rows {
		if rows[i].AcceptedRate == nil {
			rate := deriveRate(rows[i].AcceptedSubmissions, rows[i].TotalSubmissions)
			rows[i].AcceptedRate = &rate
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return *rows[i].AcceptedRate > *rows[j].AcceptedRate
	})

	return rows, nil
}
