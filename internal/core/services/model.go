package services

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure ModelService implements the interface.
var _ driving.ModelService = (*ModelService)(nil)

// ModelService exposes the hosted reranker.
type ModelService struct {
	backend driven.Reranker
}

// NewModelService creates a new model service.
func NewModelService(backend driven.Reranker) *ModelService {
	return &ModelService{backend: backend}
}

// Rerank scores documents against query.
func (s *ModelService) Rerank(
	ctx context.Context,
	query string,
	documents []string,
	opts domain.RerankOptions,
) ([]domain.RerankResult, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	opts = opts.WithDefaults()
	logger.Debug("reranking", "model", opts.Model, "documents", len(documents))
	return s.backend.Rerank(ctx, query, documents, opts)
}
