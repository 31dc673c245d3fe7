package services

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure CollectionService implements the interface.
var _ driving.CollectionService = (*CollectionService)(nil)

// CollectionService manages collections.
type CollectionService struct {
	backend driven.CollectionStore
}

// NewCollectionService creates a new collection service.
// A nil backend puts the service in development mode.
func NewCollectionService(backend driven.CollectionStore) *CollectionService {
	return &CollectionService{backend: backend}
}

// List returns all collection names.
func (s *CollectionService) List(ctx context.Context) ([]string, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("listing collections")
	return s.backend.ListCollections(ctx)
}

// Add creates a new collection.
func (s *CollectionService) Add(ctx context.Context, name string) error {
	if s.backend == nil {
		return domain.ErrNotConfigured
	}
	logger.Debug("adding collection", "collection", name)
	return s.backend.AddCollection(ctx, name)
}

// Delete removes a collection.
func (s *CollectionService) Delete(ctx context.Context, name string) error {
	if s.backend == nil {
		return domain.ErrNotConfigured
	}
	logger.Debug("deleting collection", "collection", name)
	return s.backend.DeleteCollection(ctx, name)
}
