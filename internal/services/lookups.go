package services

import (
	"context"

	"cptracker/internal/logger"
)

// PlatformNamesReader reads platform names.
type PlatformNamesReader interface {
	Names(ctx context.Context) ([]string, error)
}

// TagNamesReader reads tag names.
type TagNamesReader interface {
	Names(ctx context.Context) ([]string, error)
}

// LookupService serves the sidebar filter lists. Every call is a live read.
type LookupService struct {
	platforms PlatformNamesReader
	tags      TagNamesReader
}

// NewLookupService creates a new LookupService.
func NewLookupService(platforms PlatformNamesReader, tags TagNamesReader) *LookupService {
	return &LookupService{platforms: platforms, tags: tags}
}

// Platforms returns all platform names.
func (s *LookupService) Platforms(ctx context.Context) ([]string, error) {
	names, err := s.platforms.Names(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read platforms", "err", err)
		return nil, err
	}
	return names, nil
}

// Tags returns all tag names.
func (s *LookupService) Tags(ctx context.Context) ([]string, error) {
	names, err := s.tags.Names(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read tags", "err", err)
		return nil, err
	}
	return names, nil
}
