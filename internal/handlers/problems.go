package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// ProblemLister defines the interface that the service must implement.
type ProblemLister interface {
	List(ctx context.Context, platform, tag, search string) ([]models.ProblemRow, error)
	Tags(ctx context.Context, problemID int64) ([]string, error)
}

// ProblemsResponse represents the problems view
// swagger:model ProblemsResponse
type ProblemsResponse struct {
	// Filtered problems listing
	Problems []models.ProblemRow `json:"problems"`
}

// ProblemTagsResponse represents the tag list of one problem
// swagger:model ProblemTagsResponse
type ProblemTagsResponse struct {
	// Tag names
	Tags []string `json:"tags"`
}

// ProblemsErrorResponse represents an error response for the problems view
// swagger:model ProblemsErrorResponse
type ProblemsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewProblemsHandler returns an HTTP handler for the problems view.
// @Summary Problems view
// @Description Returns the problems listing. Platform is an equality filter with the "All" sentinel, tag restricts to problems carrying the tag, search is a case-insensitive title substring.
// @Tags views
// @Produce json
// @Param platform query string false "Platform name or All"
// @Param tag query string false "Tag name or All"
// @Param search query string false "Case-insensitive title substring"
// @Success 200 {object} handlers.ProblemsResponse "Problems listing"
// @Failure 500 {object} handlers.ProblemsErrorResponse "Internal server error"
// @Router /problems [get]
func NewProblemsHandler(svc ProblemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		problems, err := svc.List(r.Context(), q.Get("platform"), q.Get("tag"), q.Get("search"))
		if err != nil {
			logger.Log.Errorw("problems view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProblemsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProblemsResponse{Problems: problems})
	}
}

// NewProblemTagsHandler returns an HTTP handler for one problem's tag list.
// @Summary Problem tags
// @Description Returns the tag names attached to one problem.
// @Tags views
// @Produce json
// @Param id path int true "Problem ID"
// @Success 200 {object} handlers.ProblemTagsResponse "Tag names"
// @Failure 400 {object} handlers.ProblemsErrorResponse "Invalid problem id"
// @Failure 500 {object} handlers.ProblemsErrorResponse "Internal server error"
// @Router /problems/{id}/tags [get]
func NewProblemTagsHandler(svc ProblemLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProblemsErrorResponse{Error: "Invalid problem id"})
			return
		}

		tags, err := svc.Tags(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("problem tags failed", "problemID", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProblemsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProblemTagsResponse{Tags: tags})
	}
}
