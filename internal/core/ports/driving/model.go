package driving

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// ModelService exposes the hosted models.
type ModelService interface {
	// Rerank scores documents against query, most relevant first.
	Rerank(ctx context.Context, query string, documents []string, opts domain.RerankOptions) ([]domain.RerankResult, error)
}
