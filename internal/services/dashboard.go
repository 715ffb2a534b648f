package services

import (
	"context"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

const (
	dashboardRecentLimit = 25
	dashboardTrendWeeks  = 8
)

// DashboardReader defines the aggregate reads the dashboard needs.
type DashboardReader interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProblems(ctx context.Context) (int64, error)
	CountSubmissions(ctx context.Context) (int64, error)
	CountAccepted(ctx context.Context) (int64, error)
	WeeklyTrend(ctx context.Context, weeks int) ([]models.WeeklyBucket, error)
}

// RecentSubmissionsReader reads the recent submissions listing.
type RecentSubmissionsReader interface {
	Recent(ctx context.Context, limit int) ([]models.SubmissionRow, error)
}

// DashboardService composes the metric tiles, the recent-activity table and
// the weekly trend chart. Every call reads live data.
type DashboardService struct {
	stats       DashboardReader
	submissions RecentSubmissionsReader
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(stats DashboardReader, submissions RecentSubmissionsReader) *DashboardService {
	return &DashboardService{stats: stats, submissions: submissions}
}

// GetDashboard returns the metrics, the 25 most recent submissions and the
// 8-week submission trend. The accept rate is 0 when there are no submissions.
func (s *DashboardService) GetDashboard(ctx context.Context) (models.DashboardMetrics, []models.SubmissionRow, []models.WeeklyBucket, error) {
	var metrics models.DashboardMetrics
	var err error

	if metrics.Users, err = s.stats.CountUsers(ctx); err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}
	if metrics.Problems, err = s.stats.CountProblems(ctx); err != nil {
		logger.Log.Errorw("failed to count problems", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}
	if metrics.Submissions, err = s.stats.CountSubmissions(ctx); err != nil {
		logger.Log.Errorw("failed to count submissions", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}
	if metrics.Accepted, err = s.stats.CountAccepted(ctx); err != nil {
		logger.Log.Errorw("failed to count accepted submissions", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}
	metrics.AcceptRate = deriveRate(metrics.Accepted, metrics.Submissions)

	recent, err := s.submissions.Recent(ctx, dashboardRecentLimit)
	if err != nil {
		logger.Log.Errorw("failed to read recent submissions", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}

	trend, err := s.stats.WeeklyTrend(ctx, dashboardTrendWeeks)
	if err != nil {
		logger.Log.Errorw("failed to read weekly trend", "err", err)
		return models.DashboardMetrics{}, nil, nil, err
	}

	return metrics, recent, trend, nil
}
