package zeroentropy

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// GetStatus returns indexing counters for one collection, or all when nil.
func (c *Client) GetStatus(ctx context.Context, collection *string) (*domain.IndexingStatus, error) {
	var resp statusResponse
	if err := c.post(ctx, endpointGetStatus, statusRequest{CollectionName: collection}, &resp); err != nil {
		return nil, err
	}
	return &domain.IndexingStatus{
		NumDocuments:         resp.NumDocuments,
		NumParsingDocuments:  resp.NumParsingDocuments,
		NumIndexingDocuments: resp.NumIndexingDocuments,
		NumIndexedDocuments:  resp.NumIndexedDocuments,
		NumFailedDocuments:   resp.NumFailedDocuments,
	}, nil
}
