package services

import (
	"context"
	"sort"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// LeaderboardLister reads the leaderboard view.
type LeaderboardLister interface {
	List(ctx context.Context) ([]models.LeaderboardRow, error)
}

// LeaderboardService filters, normalizes and orders the leaderboard.
type LeaderboardService struct {
	reader LeaderboardLister
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(reader LeaderboardLister) *LeaderboardService {
	return &LeaderboardService{reader: reader}
}

// List returns the leaderboard, optionally filtered by a case-insensitive
// username search, with the accuracy fallback applied and rows ordered by
// total_solved desc, accuracy desc.
func (s *LeaderboardService) List(ctx context.Context, search string) ([]models.LeaderboardRow, error) {
	rows, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read leaderboard", "err", err)
		return nil, err
	}

	if search != "" {
		rows = filterRows(rows, func(row models.LeaderboardRow) bool {
			return matchFold(&row.Username, search)
		})
	}

	for i := range rows {
		if rows[i].Accuracy == nil {
			accuracy := deriveRate(rows[i].AcceptedSubmissions, rows[i].TotalSubmissions)
			rows[i].Accuracy = &accuracy
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].TotalSolved != rows[j].TotalSolved {
			return rows[i].TotalSolved > rows[j].TotalSolved
		}
		return *rows[i].Accuracy > *rows[j].Accuracy
	})

	return rows, nil
}
