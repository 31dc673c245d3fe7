package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
	"github.com/custodia-labs/zeroentropy-mcp/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

// DocumentService manages documents within collections.
type DocumentService struct {
	backend driven.DocumentStore
}

// NewDocumentService creates a new document service.
// A nil backend puts the service in development mode.
func NewDocumentService(backend driven.DocumentStore) *DocumentService {
	return &DocumentService{backend: backend}
}

// Add submits a new document for indexing.
func (s *DocumentService) Add(ctx context.Context, doc domain.NewDocument) error {
	if s.backend == nil {
		return domain.ErrNotConfigured
	}
	if doc.Content == nil {
		return fmt.Errorf("%w: document content is required", domain.ErrInvalidInput)
	}
	logger.Debug("adding document",
		"collection", doc.CollectionName,
		"path", doc.Path,
		"content_type", doc.Content.ContentType(),
	)
	return s.backend.AddDocument(ctx, doc)
}

// GetInfo returns a snapshot of a document.
func (s *DocumentService) GetInfo(
	ctx context.Context,
	collection, path string,
	opts domain.GetDocumentOptions,
) (*domain.DocumentInfo, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("getting document info", "collection", collection, "path", path)
	return s.backend.GetDocumentInfo(ctx, collection, path, opts)
}

// ListInfo returns a page of documents ordered by path.
func (s *DocumentService) ListInfo(
	ctx context.Context,
	collection string,
	opts domain.ListDocumentsOptions,
) ([]domain.DocumentInfo, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	opts = opts.WithDefaults()
	logger.Debug("listing documents", "collection", collection, "limit", opts.Limit)
	return s.backend.ListDocumentInfo(ctx, collection, opts)
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, collection, path string) error {
	if s.backend == nil {
		return domain.ErrNotConfigured
	}
	logger.Debug("deleting document", "collection", collection, "path", path)
	return s.backend.DeleteDocument(ctx, collection, path)
}

// GetPageInfo returns a snapshot of one page.
func (s *DocumentService) GetPageInfo(
	ctx context.Context,
	collection, path string,
	pageIndex int,
	opts domain.GetPageOptions,
) (*domain.PageInfo, error) {
	if s.backend == nil {
		return nil, domain.ErrNotConfigured
	}
	logger.Debug("getting page info", "collection", collection, "path", path, "page", pageIndex)
	return s.backend.GetPageInfo(ctx, collection, path, pageIndex, opts)
}
