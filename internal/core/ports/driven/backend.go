package driven

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// CollectionStore manages collections on the backend.
type CollectionStore interface {
	// ListCollections returns the names of every collection the key owns.
	ListCollections(ctx context.Context) ([]string, error)

	// AddCollection creates a collection. Returns ErrAlreadyExists on conflict.
	AddCollection(ctx context.Context, name string) error

	// DeleteCollection removes a collection. Returns ErrNotFound if absent.
	DeleteCollection(ctx context.Context, name string) error
}

// DocumentStore manages documents within collections.
type DocumentStore interface {
	// AddDocument submits a document for indexing.
	AddDocument(ctx context.Context, doc domain.NewDocument) error

	// GetDocumentInfo returns a snapshot of one document.
	GetDocumentInfo(ctx context.Context, collection, path string, opts domain.GetDocumentOptions) (*domain.DocumentInfo, error)

	// ListDocumentInfo returns documents ordered by path.
	ListDocumentInfo(ctx context.Context, collection string, opts domain.ListDocumentsOptions) ([]domain.DocumentInfo, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, collection, path string) error

	// GetPageInfo returns a snapshot of one page (0-based index).
	GetPageInfo(ctx context.Context, collection, path string, pageIndex int, opts domain.GetPageOptions) (*domain.PageInfo, error)
}

// QueryEngine runs semantic queries. Results are ordered by descending score.
type QueryEngine interface {
	TopDocuments(ctx context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error)
	TopPages(ctx context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error)
	TopSnippets(ctx context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error)
}

// Reranker scores caller-supplied texts against a query.
type Reranker interface {
	Rerank(ctx context.Context, query string, documents []string, opts domain.RerankOptions) ([]domain.RerankResult, error)
}

// StatusReporter reports indexing progress.
type StatusReporter interface {
	// GetStatus returns counters for one collection, or all when collection is nil.
	GetStatus(ctx context.Context, collection *string) (*domain.IndexingStatus, error)
}

// Backend is the full remote document-search contract.
// Implementations must be safe for concurrent use.
type Backend interface {
	CollectionStore
	DocumentStore
	QueryEngine
	Reranker
	StatusReporter
}
