package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// TopDocumentsInput is the input schema for search_top_documents.
type TopDocumentsInput struct {
	CollectionName  string         `json:"collection_name" jsonschema:"collection to search"`
	Query           string         `json:"query" jsonschema:"natural language query, at most 4096 bytes"`
	K               int            `json:"k" jsonschema:"number of results to return, between 1 and 2048"`
	Filter          map[string]any `json:"filter,omitempty" jsonschema:"metadata filter using $eq, $ne, $gt, $gte, $lt, $lte, $in, $nin, $and and $or"`
	IncludeMetadata bool           `json:"include_metadata,omitempty" jsonschema:"include document metadata in each result (default false)"`
	Reranker        *string        `json:"reranker,omitempty" jsonschema:"reranker model applied to the results, e.g. zerank-1"`
	LatencyMode     *string        `json:"latency_mode,omitempty" jsonschema:"low or high; high trades latency for deeper search"`
}

// TopPagesInput is the input schema for search_top_pages.
type TopPagesInput struct {
	CollectionName string         `json:"collection_name" jsonschema:"collection to search"`
	Query          string         `json:"query" jsonschema:"natural language query, at most 4096 bytes"`
	K              int            `json:"k" jsonschema:"number of results to return, between 1 and 2048"`
	Filter         map[string]any `json:"filter,omitempty" jsonschema:"metadata filter using $eq, $ne, $gt, $gte, $lt, $lte, $in, $nin, $and and $or"`
	IncludeContent bool           `json:"include_content,omitempty" jsonschema:"include the page text in each result (default false)"`
	LatencyMode    *string        `json:"latency_mode,omitempty" jsonschema:"low or high; high trades latency for deeper search"`
}

// TopSnippetsInput is the input schema for search_top_snippets.
type TopSnippetsInput struct {
	CollectionName          string         `json:"collection_name" jsonschema:"collection to search"`
	Query                   string         `json:"query" jsonschema:"natural language query, at most 4096 bytes"`
	K                       int            `json:"k" jsonschema:"number of results to return, between 1 and 2048"`
	Reranker                *string        `json:"reranker,omitempty" jsonschema:"reranker model applied to the results, e.g. zerank-1"`
	Filter                  map[string]any `json:"filter,omitempty" jsonschema:"metadata filter using $eq, $ne, $gt, $gte, $lt, $lte, $in, $nin, $and and $or"`
	PreciseResponses        bool           `json:"precise_responses,omitempty" jsonschema:"return short snippets of about 200 characters instead of about 2000 (default false)"`
	IncludeDocumentMetadata bool           `json:"include_document_metadata,omitempty" jsonschema:"include the source document metadata in each result (default false)"`
}

// DocumentResultOutput is a single search_top_documents hit.
type DocumentResultOutput struct {
	Path     string         `json:"path"`
	Score    float64        `json:"score"`
	FileURL  string         `json:"file_url"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TopDocumentsOutput is the output schema for search_top_documents.
type TopDocumentsOutput struct {
	Results []DocumentResultOutput `json:"results"`
}

// PageResultOutput is a single search_top_pages hit.
type PageResultOutput struct {
	Path      string  `json:"path"`
	PageIndex int     `json:"page_index"`
	Score     float64 `json:"score"`
	Content   *string `json:"content,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// TopPagesOutput is the output schema for search_top_pages.
type TopPagesOutput struct {
	Results []PageResultOutput `json:"results"`
}

// SnippetResultOutput is a single search_top_snippets hit.
type SnippetResultOutput struct {
	Path       string         `json:"path"`
	StartIndex int            `json:"start_index"`
	EndIndex   int            `json:"end_index"`
	PageSpan   [2]int         `json:"page_span"`
	Content    string         `json:"content"`
	Score      float64        `json:"score"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// TopSnippetsOutput is the output schema for search_top_snippets.
type TopSnippetsOutput struct {
	Results []SnippetResultOutput `json:"results"`
}

func (s *Server) registerQueryTools() {
	addTool(s, &mcp.Tool{
		Name:        ToolSearchTopDocuments,
		Description: "Find the documents in a collection most relevant to a query, best first",
		Annotations: readOnly("Search documents"),
	}, s.handleTopDocuments)

	addTool(s, &mcp.Tool{
		Name:        ToolSearchTopPages,
		Description: "Find the individual pages in a collection most relevant to a query, best first",
		Annotations: readOnly("Search pages"),
	}, s.handleTopPages)

	addTool(s, &mcp.Tool{
		Name:        ToolSearchTopSnippets,
		Description: "Find the text snippets in a collection most relevant to a query, best first",
		Annotations: readOnly("Search snippets"),
	}, s.handleTopSnippets)
}

func (s *Server) handleTopDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopDocumentsInput,
) (*mcp.CallToolResult, TopDocumentsOutput, error) {
	results, err := s.ports.Queries.TopDocuments(ctx, domain.TopDocumentsQuery{
		CollectionName:  input.CollectionName,
		Query:           input.Query,
		K:               input.K,
		Filter:          domain.Filter(input.Filter),
		IncludeMetadata: input.IncludeMetadata,
		Reranker:        input.Reranker,
		LatencyMode:     latencyMode(input.LatencyMode),
	})
	if err != nil {
		return nil, TopDocumentsOutput{}, err
	}

	output := TopDocumentsOutput{Results: make([]DocumentResultOutput, len(results))}
	for i, r := range results {
		output.Results[i] = DocumentResultOutput{
			Path:     r.Path,
			Score:    r.Score,
			FileURL:  r.FileURL,
			Metadata: optionalMetadata(r.Metadata),
		}
	}
	return nil, output, nil
}

func (s *Server) handleTopPages(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopPagesInput,
) (*mcp.CallToolResult, TopPagesOutput, error) {
	results, err := s.ports.Queries.TopPages(ctx, domain.TopPagesQuery{
		CollectionName: input.CollectionName,
		Query:          input.Query,
		K:              input.K,
		Filter:         domain.Filter(input.Filter),
		IncludeContent: input.IncludeContent,
		LatencyMode:    latencyMode(input.LatencyMode),
	})
	if err != nil {
		return nil, TopPagesOutput{}, err
	}

	output := TopPagesOutput{Results: make([]PageResultOutput, len(results))}
	for i, r := range results {
		output.Results[i] = PageResultOutput{
			Path:      r.Path,
			PageIndex: r.PageIndex,
			Score:     r.Score,
			Content:   r.Content,
			ImageURL:  r.ImageURL,
		}
	}
	return nil, output, nil
}

func (s *Server) handleTopSnippets(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input TopSnippetsInput,
) (*mcp.CallToolResult, TopSnippetsOutput, error) {
	results, err := s.ports.Queries.TopSnippets(ctx, domain.TopSnippetsQuery{
		CollectionName:          input.CollectionName,
		Query:                   input.Query,
		K:                       input.K,
		Filter:                  domain.Filter(input.Filter),
		Reranker:                input.Reranker,
		PreciseResponses:        input.PreciseResponses,
		IncludeDocumentMetadata: input.IncludeDocumentMetadata,
	})
	if err != nil {
		return nil, TopSnippetsOutput{}, err
	}

	output := TopSnippetsOutput{Results: make([]SnippetResultOutput, len(results))}
	for i, r := range results {
		output.Results[i] = SnippetResultOutput{
			Path:       r.Path,
			StartIndex: r.StartIndex,
			EndIndex:   r.EndIndex,
			PageSpan:   r.PageSpan,
			Content:    r.Content,
			Score:      r.Score,
			Metadata:   optionalMetadata(r.Metadata),
		}
	}
	return nil, output, nil
}

// latencyMode forwards the caller's value untouched; unknown modes are
// rejected by the backend.
func latencyMode(s *string) *domain.LatencyMode {
	if s == nil {
		return nil
	}
	m := domain.LatencyMode(*s)
	return &m
}

func optionalMetadata(m domain.Metadata) map[string]any {
	if m == nil {
		return nil
	}
	return metadataOutput(m)
}
