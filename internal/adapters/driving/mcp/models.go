package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// RerankInput is the input schema for rerank_documents.
type RerankInput struct {
	Query     string   `json:"query" jsonschema:"query to score the documents against"`
	Documents []string `json:"documents" jsonschema:"texts to rerank"`
	Model     string   `json:"model,omitempty" jsonschema:"reranker model (default zerank-1)"`
	TopN      *int     `json:"top_n,omitempty" jsonschema:"return only the N most relevant documents"`
}

// RerankResultOutput is a single reranked document.
type RerankResultOutput struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

// RerankOutput is the output schema for rerank_documents.
type RerankOutput struct {
	Results []RerankResultOutput `json:"results"`
}

func (s *Server) registerModelTools() {
	addTool(s, &mcp.Tool{
		Name: ToolRerankDocuments,
		Description: "Score a list of texts against a query and return them most relevant first. " +
			"Each result carries the index of the text in the input list.",
		Annotations: readOnly("Rerank documents"),
	}, s.handleRerank)
}

func (s *Server) handleRerank(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RerankInput,
) (*mcp.CallToolResult, RerankOutput, error) {
	results, err := s.ports.Models.Rerank(ctx, input.Query, input.Documents, domain.RerankOptions{
		Model: input.Model,
		TopN:  input.TopN,
	})
	if err != nil {
		return nil, RerankOutput{}, err
	}

	output := RerankOutput{Results: make([]RerankResultOutput, len(results))}
	for i, r := range results {
		output.Results[i] = RerankResultOutput{Index: r.Index, RelevanceScore: r.RelevanceScore}
	}
	return nil, output, nil
}
