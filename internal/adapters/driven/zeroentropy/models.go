package zeroentropy

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// Rerank scores documents against query with the configured model.
func (c *Client) Rerank(
	ctx context.Context,
	query string,
	documents []string,
	opts domain.RerankOptions,
) ([]domain.RerankResult, error) {
	opts = opts.WithDefaults()
	if documents == nil {
		documents = []string{}
	}
	req := rerankRequest{
		Query:     query,
		Documents: documents,
		Model:     opts.Model,
		TopN:      opts.TopN,
	}

	var resp resultsResponse[rerankResultPayload]
	if err := c.post(ctx, endpointRerank, req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.RerankResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.RerankResult{Index: r.Index, RelevanceScore: r.RelevanceScore}
	}
	return results, nil
}
