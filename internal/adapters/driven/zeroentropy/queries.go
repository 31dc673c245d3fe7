package zeroentropy

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// TopDocuments returns the top K documents for a query.
func (c *Client) TopDocuments(ctx context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error) {
	req := topDocumentsRequest{
		CollectionName:  q.CollectionName,
		Query:           q.Query,
		K:               q.K,
		Filter:          q.Filter,
		IncludeMetadata: q.IncludeMetadata,
		Reranker:        q.Reranker,
		LatencyMode:     latencyMode(q.LatencyMode),
	}

	var resp resultsResponse[documentResultPayload]
	if err := c.post(ctx, endpointTopDocuments, req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.DocumentResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.DocumentResult{
			Path:     r.Path,
			Score:    r.Score,
			FileURL:  r.FileURL,
			Metadata: r.Metadata,
		}
	}
	return results, nil
}

// TopPages returns the top K pages for a query.
func (c *Client) TopPages(ctx context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error) {
	req := topPagesRequest{
		CollectionName: q.CollectionName,
		Query:          q.Query,
		K:              q.K,
		Filter:         q.Filter,
		IncludeContent: q.IncludeContent,
		LatencyMode:    latencyMode(q.LatencyMode),
	}

	var resp resultsResponse[pageResultPayload]
	if err := c.post(ctx, endpointTopPages, req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.PageResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.PageResult{
			Path:      r.Path,
			PageIndex: r.PageIndex,
			Score:     r.Score,
			Content:   r.Content,
			ImageURL:  r.ImageURL,
		}
	}
	return results, nil
}

// TopSnippets returns the top K snippets for a query.
func (c *Client) TopSnippets(ctx context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error) {
	req := topSnippetsRequest{
		CollectionName:          q.CollectionName,
		Query:                   q.Query,
		K:                       q.K,
		Filter:                  q.Filter,
		Reranker:                q.Reranker,
		PreciseResponses:        q.PreciseResponses,
		IncludeDocumentMetadata: q.IncludeDocumentMetadata,
	}

	var resp resultsResponse[snippetResultPayload]
	if err := c.post(ctx, endpointTopSnippets, req, &resp); err != nil {
		return nil, err
	}

	results := make([]domain.SnippetResult, len(resp.Results))
	for i, r := range resp.Results {
		results[i] = domain.SnippetResult{
			Path:       r.Path,
			StartIndex: r.StartIndex,
			EndIndex:   r.EndIndex,
			PageSpan:   r.PageSpan,
			Content:    r.Content,
			Score:      r.Score,
			Metadata:   r.Metadata,
		}
	}
	return results, nil
}
