package driving

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// QueryService provides semantic search over a collection.
type QueryService interface {
	TopDocuments(ctx context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error)
	TopPages(ctx context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error)
	TopSnippets(ctx context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error)
}
