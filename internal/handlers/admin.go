package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// AdminActor defines the interface that the service must implement.
type AdminActor interface {
	RecomputeTagStats(ctx context.Context) error
	AuditLog(ctx context.Context) ([]models.AuditRow, error)
}

// RecomputeResponse represents a successful recompute
// swagger:model RecomputeResponse
type RecomputeResponse struct {
	// Success message
	// default: Stored procedure executed, user_tag_stats updated
	Message string `json:"message"`
}

// AuditLogResponse represents the audit log view
// swagger:model AuditLogResponse
type AuditLogResponse struct {
	// Last 200 audit rows, newest first
	Entries []models.AuditRow `json:"entries"`
}

// AdminErrorResponse represents an error response for an admin action.
// The error field carries the underlying database message on write failure.
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewRecomputeHandler returns an HTTP handler for the recompute action.
// @Summary Recompute user tag stats
// @Description Calls sp_compute_user_tag_stats inside the request transaction. The procedure owns the recompute logic.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.RecomputeResponse "Procedure executed"
// @Failure 500 {object} handlers.AdminErrorResponse "Procedure failed"
// @Router /admin/recompute-tag-stats [post]
// @Security BearerAuth
func NewRecomputeHandler(svc AdminActor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.RecomputeTagStats(r.Context()); err != nil {
			logger.Log.Errorw("recompute action failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecomputeResponse{
			Message: "Stored procedure executed, user_tag_stats updated",
		})
	}
}

// NewAuditLogHandler returns an HTTP handler for the audit log view.
// @Summary Audit log
// @Description Returns the last 200 rows of the trigger-maintained audit_log, newest first.
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AuditLogResponse "Audit entries"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/audit-log [get]
// @Security BearerAuth
func NewAuditLogHandler(svc AdminActor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := svc.AuditLog(r.Context())
		if err != nil {
			logger.Log.Errorw("audit log view failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AuditLogResponse{Entries: entries})
	}
}
