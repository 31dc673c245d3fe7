package driving

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// DocumentService manages documents within collections.
type DocumentService interface {
	// Add submits a new document for indexing.
	Add(ctx context.Context, doc domain.NewDocument) error

	// GetInfo returns a snapshot of a document.
	GetInfo(ctx context.Context, collection, path string, opts domain.GetDocumentOptions) (*domain.DocumentInfo, error)

	// ListInfo returns a page of documents ordered by path.
	ListInfo(ctx context.Context, collection string, opts domain.ListDocumentsOptions) ([]domain.DocumentInfo, error)

	// Delete removes a document.
	Delete(ctx context.Context, collection, path string) error

	// GetPageInfo returns a snapshot of one page.
	GetPageInfo(ctx context.Context, collection, path string, pageIndex int, opts domain.GetPageOptions) (*domain.PageInfo, error)
}
