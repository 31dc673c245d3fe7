package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// StatusInput is the input schema for get_indexing_status.
type StatusInput struct {
	CollectionName *string `json:"collection_name,omitempty" jsonschema:"collection to report on; omit for all collections"`
}

// StatusOutput is an indexing status snapshot.
type StatusOutput struct {
	NumDocuments         int `json:"num_documents"`
	NumParsingDocuments  int `json:"num_parsing_documents"`
	NumIndexingDocuments int `json:"num_indexing_documents"`
	NumIndexedDocuments  int `json:"num_indexed_documents"`
	NumFailedDocuments   int `json:"num_failed_documents"`
}

func (s *Server) registerStatusTools() {
	addTool(s, &mcp.Tool{
		Name:        ToolGetIndexingStatus,
		Description: "Report how many documents are parsing, indexing, indexed or failed, for one collection or all",
		Annotations: readOnly("Indexing status"),
	}, s.handleGetIndexingStatus)
}

func (s *Server) handleGetIndexingStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input StatusInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	st, err := s.ports.Status.Get(ctx, input.CollectionName)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, toStatusOutput(st), nil
}

func toStatusOutput(st *domain.IndexingStatus) StatusOutput {
	return StatusOutput{
		NumDocuments:         st.NumDocuments,
		NumParsingDocuments:  st.NumParsingDocuments,
		NumIndexingDocuments: st.NumIndexingDocuments,
		NumIndexedDocuments:  st.NumIndexedDocuments,
		NumFailedDocuments:   st.NumFailedDocuments,
	}
}
