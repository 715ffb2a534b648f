package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// DashboardGetter defines the interface that the service must implement.
type DashboardGetter interface {
	GetDashboard(ctx context.Context) (models.DashboardMetrics, []models.SubmissionRow, []models.WeeklyBucket, error)
}

// DashboardResponse represents the dashboard view
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Metric tiles
	Metrics models.DashboardMetrics `json:"metrics"`

	// 25 most recent submissions
	RecentSubmissions []models.SubmissionRow `json:"recent_submissions"`

	// Weekly submission counts for the last 8 weeks
	WeeklyTrend []models.WeeklyBucket `json:"weekly_trend"`
}

// DashboardErrorResponse represents an error response for the dashboard view
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for the dashboard view.
// @Summary Dashboard view
// @Description Returns metric tiles, the 25 most recent submissions and the 8-week submission trend. Every read is live.
// @Tags views
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard data"
// @Failure 500 {object} handlers.DashboardErrorResponse "Internal server error"
// @Router /dashboard [get]
func NewDashboardHandler(svc DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, recent, trend, err := svc.GetDashboard(r.Context())
		if err != nil {
			logger.Log.Errorw("dashboard view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DashboardResponse{
			Metrics:           metrics,
			RecentSubmissions: recent,
			WeeklyTrend:       trend,
		})
	}
}
