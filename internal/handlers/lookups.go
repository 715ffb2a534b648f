package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
)

// LookupGetter defines the interface that the service must implement.
type LookupGetter interface {
	Platforms(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]string, error)
}

// LookupResponse represents a sidebar filter list
// swagger:model LookupResponse
type LookupResponse struct {
	// Names for the filter selection
	Names []string `json:"names"`
}

// LookupErrorResponse represents an error response for a lookup
// swagger:model LookupErrorResponse
type LookupErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewPlatformsHandler returns an HTTP handler for the platform filter list.
// @Summary Platform names
// @Description Returns all platform names for the sidebar filter.
// @Tags lookups
// @Produce json
// @Success 200 {object} handlers.LookupResponse "Platform names"
// @Failure 500 {object} handlers.LookupErrorResponse "Internal server error"
// @Router /platforms [get]
func NewPlatformsHandler(svc LookupGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.Platforms(r.Context())
		if err != nil {
			logger.Log.Errorw("platforms lookup failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LookupErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LookupResponse{Names: names})
	}
}

// NewTagsHandler returns an HTTP handler for the tag filter list.
// @Summary Tag names
// @Description Returns all tag names for the sidebar filter.
// @Tags lookups
// @Produce json
// @Success 200 {object} handlers.LookupResponse "Tag names"
// @Failure 500 {object} handlers.LookupErrorResponse "Internal server error"
// @Router /tags [get]
func NewTagsHandler(svc LookupGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.Tags(r.Context())
		if err != nil {
			logger.Log.Errorw("tags lookup failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LookupErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LookupResponse{Names: names})
	}
}
