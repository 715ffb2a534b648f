package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"cptracker/internal/logger"
	"cptracker/internal/models"
)

// ErrInvalidCredentials is returned when the admin password does not match.
var ErrInvalidCredentials = errors.New("invalid admin credentials")

const auditLogLimit = 200

// Recomputer invokes the store-owned recompute procedure.
type Recomputer interface {
	RecomputeUserTagStats(ctx context.Context) error
}

// AuditReader reads the audit log.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]models.AuditRow, error)
}

// JWTGenerator defines an interface for generating admin tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, subject string) (string, error)
}

// AdminService owns the admin actions: the stored-procedure invocation and
// the audit-log view.
type AdminService struct {
	recomputer Recomputer
	audit      AuditReader
}

// NewAdminService creates a new AdminService.
func NewAdminService(recomputer Recomputer, audit AuditReader) *AdminService {
	return &AdminService{recomputer: recomputer, audit: audit}
}

// RecomputeTagStats runs sp_compute_user_tag_stats. Failures carry the
// database error message; there is no retry.
func (s *AdminService) RecomputeTagStats(ctx context.Context) error {
	if err := s.recomputer.RecomputeUserTagStats(ctx); err != nil {
		logger.Log.Errorw("failed to run recompute procedure", "err", err)
		return err
	}
	return nil
}

// AuditLog returns the last 200 audit rows.
func (s *AdminService) AuditLog(ctx context.Context) ([]models.AuditRow, error) {
	rows, err := s.audit.Recent(ctx, auditLogLimit)
	if err != nil {
		logger.Log.Errorw("failed to read audit log", "err", err)
		return nil, err
	}
	return rows, nil
}

// AdminAuthService authenticates the single admin principal against the
// bcrypt hash from configuration.
type AdminAuthService struct {
	jwt          JWTGenerator
	passwordHash string
}

// NewAdminAuthService creates a new AdminAuthService.
func NewAdminAuthService(jwt JWTGenerator, passwordHash string) *AdminAuthService {
	return &AdminAuthService{jwt: jwt, passwordHash: passwordHash}
}

// Login checks the password and returns a bearer token for the admin routes.
func (s *AdminAuthService) Login(ctx context.Context, password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid admin credentials")
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(ctx, "admin")
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}
