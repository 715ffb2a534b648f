package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// TagSummaryGetter defines the interface that the service must implement.
type TagSummaryGetter interface {
	Summary(ctx context.Context, tag string) ([]models.TagSummaryRow, error)
}

// TagSummaryResponse represents the tag analysis view
// swagger:model TagSummaryResponse
type TagSummaryResponse struct {
	// Rows ordered by accepted_rate desc
	Tags []models.TagSummaryRow `json:"tags"`
}

// TagSummaryErrorResponse represents an error response for the tag analysis view
// swagger:model TagSummaryErrorResponse
type TagSummaryErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewTagSummaryHandler returns an HTTP handler for the tag analysis view.
// @Summary Tag analysis view
// @Description Returns vw_tag_summary with the accepted_rate fallback applied (0 for an empty tag), optionally restricted to one tag, ordered by accepted_rate desc.
// @Tags views
// @Produce json
// @Param tag query string false "Tag name or All"
// @Success 200 {object} handlers.TagSummaryResponse "Tag summary"
// @Failure 500 {object} handlers.TagSummaryErrorResponse "Internal server error"
// @Router /tags/summary [get]
func NewTagSummaryHandler(svc TagSummaryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Summary(r.Context(), r.URL.Query().Get("tag"))
		if err != nil {
			logger.Log.Errorw("tag analysis view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TagSummaryErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TagSummaryResponse{Tags: rows})
	}
}
