package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

const topSolversLimit = 10

// LeaderboardLister defines the interface that the service must implement.
type LeaderboardLister interface {
	List(ctx context.Context, search string) ([]models.LeaderboardRow, error)
}

// LeaderboardResponse represents the leaderboard view
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	// Rows ordered by total_solved desc, accuracy desc
	Rows []models.LeaderboardRow `json:"rows"`

	// Top 10 solvers for the chart
	TopSolvers []models.LeaderboardRow `json:"top_solvers"`
}

// LeaderboardErrorResponse represents an error response for the leaderboard view
// swagger:model LeaderboardErrorResponse
type LeaderboardErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewLeaderboardHandler returns an HTTP handler for the leaderboard view.
// @Summary Leaderboard view
// @Description Returns vw_leaderboard ordered by total_solved desc, accuracy desc, optionally filtered by a case-insensitive username search.
// @Tags views
// @Produce json
// @Param search query string false "Case-insensitive username substring"
// @Success 200 {object} handlers.LeaderboardResponse "Leaderboard data"
// @Failure 500 {object} handlers.LeaderboardErrorResponse "Internal server error"
// @Router /leaderboard [get]
func NewLeaderboardHandler(svc LeaderboardLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		rows, err := svc.List(r.Context(), search)
		if err != nil {
			logger.Log.Errorw("leaderboard view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LeaderboardErrorResponse{Error: "Internal server error"})
			return
		}

		top := rows
		if len(top) > topSolversLimit {
			top = top[:topSolversLimit]
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LeaderboardResponse{
			Rows:       rows,
			TopSolvers: top,
		})
	}
}
