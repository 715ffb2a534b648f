package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// SubmissionLister defines the interface that the service must implement.
type SubmissionLister interface {
	Recent(ctx context.Context) ([]models.SubmissionRow, error)
}

// SubmissionOptionsGetter defines the interface for the form options.
type SubmissionOptionsGetter interface {
	Options(ctx context.Context) (users, problems []models.Option, err error)
}

// SubmissionsResponse represents the submissions listing
// swagger:model SubmissionsResponse
type SubmissionsResponse struct {
	// 100 most recent submissions
	Submissions []models.SubmissionRow `json:"submissions"`
}

// SubmissionOptionsResponse represents the form options
// swagger:model SubmissionOptionsResponse
type SubmissionOptionsResponse struct {
	// Stable user id->username pairs
	Users []models.Option `json:"users"`

	// Stable problem id->title pairs
	Problems []models.Option `json:"problems"`
}

// SubmissionsErrorResponse represents an error response for the submissions view
// swagger:model SubmissionsErrorResponse
type SubmissionsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewSubmissionsHandler returns an HTTP handler for the submissions listing.
// @Summary Submissions view
// @Description Returns the 100 most recent submissions with username and problem title.
// @Tags views
// @Produce json
// @Success 200 {object} handlers.SubmissionsResponse "Submissions listing"
// @Failure 500 {object} handlers.SubmissionsErrorResponse "Internal server error"
// @Router /submissions [get]
func NewSubmissionsHandler(svc SubmissionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.Recent(r.Context())
		if err != nil {
			logger.Log.Errorw("submissions view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SubmissionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmissionsResponse{Submissions: rows})
	}
}

// NewSubmissionOptionsHandler returns an HTTP handler for the form options.
// @Summary Submission form options
// @Description Returns stable id->label pairs for the user and problem form selections. Identifiers, not display strings, are the authoritative form value.
// @Tags views
// @Produce json
// @Success 200 {object} handlers.SubmissionOptionsResponse "Form options"
// @Failure 500 {object} handlers.SubmissionsErrorResponse "Internal server error"
// @Router /submissions/options [get]
func NewSubmissionOptionsHandler(svc SubmissionOptionsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, problems, err := svc.Options(r.Context())
		if err != nil {
			logger.Log.Errorw("submission options failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SubmissionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SubmissionOptionsResponse{
			Users:    users,
			Problems: problems,
		})
	}
}
