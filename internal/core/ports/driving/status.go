package driving

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// StatusService reports indexing progress.
type StatusService interface {
	// Get returns status for one collection, or the aggregate when collection is nil.
	Get(ctx context.Context, collection *string) (*domain.IndexingStatus, error)
}
