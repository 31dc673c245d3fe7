package services

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure StatusService implements the interface.
var _ driving.StatusService = (*StatusService)(nil)

// StatusService reports indexing progress.
type StatusService struct {
	backend driven.StatusReporter
}

// NewStatusService creates a new status service.
func NewStatusService(backend driven.StatusReporter) *StatusService {
	return &StatusService{backend: backend}
}

// Get returns status for one collection, or across all collections when nil.
func (s *StatusService) Get(ctx context.Context, collection *string) (*domain.IndexingStatus, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	if collection != nil {
		logger.Debug("getting indexing status", "collection", *collection)
	} else {
		logger.Debug("getting aggregate indexing status")
	}
	return s.backend.GetStatus(ctx, collection)
}
