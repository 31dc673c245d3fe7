package services

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// QueryService runs semantic queries against a collection.
// Range checks on k, query length and latency mode are left to the backend.
type QueryService struct {
	backend driven.QueryEngine
}

// NewQueryService creates a new query service.
func NewQueryService(backend driven.QueryEngine) *QueryService {
	return &QueryService{backend: backend}
}

// TopDocuments returns the best matching documents.
func (s *QueryService) TopDocuments(ctx context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("querying top documents", "collection", q.CollectionName, "k", q.K)
	return s.backend.TopDocuments(ctx, q)
}

// TopPages returns the best matching pages.
func (s *QueryService) TopPages(ctx context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("querying top pages", "collection", q.CollectionName, "k", q.K)
	return s.backend.TopPages(ctx, q)
}

// TopSnippets returns the best matching snippets.
func (s *QueryService) TopSnippets(ctx context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("querying top snippets",
		"collection", q.CollectionName,
		"k", q.K,
		"precise", q.PreciseResponses,
	)
	return s.backend.TopSnippets(ctx, q)
}
