package mcp

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	ToolListCollections    = "list_collections"
	ToolAddCollection      = "add_collection"
	ToolDeleteCollection   = "delete_collection"
	ToolAddDocument        = "add_document"
	ToolGetDocumentInfo    = "get_document_info"
	ToolListDocumentInfo   = "list_document_info"
	ToolDeleteDocument     = "delete_document"
	ToolGetPageInfo        = "get_page_info"
	ToolSearchTopDocuments = "search_top_documents"
	ToolSearchTopPages     = "search_top_pages"
	ToolSearchTopSnippets  = "search_top_snippets"
	ToolRerankDocuments    = "rerank_documents"
	ToolGetIndexingStatus  = "get_indexing_status"
)

// MutationOutput is returned by tools that add or delete state.
type MutationOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	s.registerCollectionTools()
	s.registerDocumentTools()
	s.registerQueryTools()
	s.registerModelTools()
	s.registerStatusTools()
}

// addTool registers a typed handler and records its descriptor.
func addTool[In, Out any](s *Server, t *mcp.Tool, h mcp.ToolHandlerFor[In, Out]) {
	mcp.AddTool(s.server, t, h)
	s.tools = append(s.tools, t)
}

func readOnly(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:         title,
		ReadOnlyHint:  true,
		OpenWorldHint: boolPtr(false),
	}
}

func additive(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

func destructive(title string) *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		Title:           title,
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func success(format string, args ...any) MutationOutput {
	return MutationOutput{Success: true, Message: fmt.Sprintf(format, args...)}
}
