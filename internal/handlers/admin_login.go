package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"cptracker/internal/logger"
	"cptracker/internal/services"
)

// AdminLoginer defines the interface that the service must implement.
type AdminLoginer interface {
	Login(ctx context.Context, password string) (string, error)
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Admin password
	// required: true
	Password string `json:"password"`
}

// AdminLoginResponse represents a successful admin login response
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// Bearer token for the admin routes
	// default: JWT_TOKEN
	Token string `json:"token"`
}

// AdminLoginErrorResponse represents an error response for admin login
// swagger:model AdminLoginErrorResponse
type AdminLoginErrorResponse struct {
	// Error message
	// default: Invalid credentials
	Error string `json:"error"`
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticates the admin principal and returns a bearer token for the protected admin routes.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AdminLoginRequest true "Admin login request"
// @Success 200 {object} handlers.AdminLoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.AdminLoginErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AdminLoginErrorResponse "Invalid credentials"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminLoginErrorResponse{Error: "Invalid request body"})
			return
		}

		token, err := svc.Login(r.Context(), req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{Error: "Invalid credentials"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminLoginErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminLoginResponse{Token: token})
	}
}
