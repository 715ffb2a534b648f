package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"cptracker/internal/logger"
	"cptracker/internal/services"
)

// SubmissionCreator defines the interface that the service must implement.
type SubmissionCreator interface {
	Create(ctx context.Context, in services.CreateSubmission) error
}

// CreateSubmissionRequest represents the JSON body for recording a submission.
// user_id and problem_id are authoritative; username and problem_title are a
// fallback resolved by lookup and rejected when ambiguous.
// swagger:model CreateSubmissionRequest
type CreateSubmissionRequest struct {
	// User identifier (authoritative)
	// default: 1
	UserID *int64 `json:"user_id,omitempty"`

	// Username fallback
	// default: alice
	Username string `json:"username,omitempty"`

	// Problem identifier (authoritative)
	// default: 1
	ProblemID *int64 `json:"problem_id,omitempty"`

	// Problem title fallback
	// default: Two Sum
	ProblemTitle string `json:"problem_title,omitempty"`

	// Verdict, one of Accepted, Wrong Answer, TLE, RTE
	// required: true
	// default: Accepted
	Verdict string `json:"verdict"`

	// Language free text
	// default: Python
	Language string `json:"language,omitempty"`

	// Notes free text
	Notes string `json:"notes,omitempty"`
}

// CreateSubmissionResponse represents a successful submission insert
// swagger:model CreateSubmissionResponse
type CreateSubmissionResponse struct {
	// Success message
	// default: Submission recorded
	Message string `json:"message"`
}

// CreateSubmissionErrorResponse represents an error response for the write flow.
// The error field carries the underlying database message on write failure.
// swagger:model CreateSubmissionErrorResponse
type CreateSubmissionErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewCreateSubmissionHandler returns an HTTP handler for the submission form.
// @Summary Record a submission
// @Description Inserts a submission row inside the request transaction. Database triggers update counters and the audit log. No retry.
// @Tags submissions
// @Accept json
// @Produce json
// @Param request body handlers.CreateSubmissionRequest true "Submission form"
// @Success 201 {object} handlers.CreateSubmissionResponse "Submission recorded"
// @Failure 400 {object} handlers.CreateSubmissionErrorResponse "Invalid form input"
// @Failure 409 {object} handlers.CreateSubmissionErrorResponse "Ambiguous name or constraint violation"
// @Failure 500 {object} handlers.CreateSubmissionErrorResponse "Write failure"
// @Router /submissions [post]
func NewCreateSubmissionHandler(svc SubmissionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateSubmissionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.UserID == nil && req.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: "user_id or username is required"})
			return
		}
		if req.ProblemID == nil && req.ProblemTitle == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: "problem_id or problem_title is required"})
			return
		}

		err := svc.Create(r.Context(), services.CreateSubmission{
			UserID:       req.UserID,
			Username:     req.Username,
			ProblemID:    req.ProblemID,
			ProblemTitle: req.ProblemTitle,
			Verdict:      req.Verdict,
			Language:     req.Language,
			Notes:        req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidVerdict),
				errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrProblemNotFound):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: err.Error()})
			case errors.Is(err, services.ErrAmbiguousUser),
				errors.Is(err, services.ErrAmbiguousProblem),
				isConstraintViolation(err):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: err.Error()})
			default:
				logger.Log.Errorw("failed to record submission", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateSubmissionErrorResponse{Error: err.Error()})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateSubmissionResponse{Message: "Submission recorded"})
	}
}

// isConstraintViolation reports whether err is a unique or foreign-key
// violation from the store.
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" || pgErr.Code == "23503"
	}
	return false
}
