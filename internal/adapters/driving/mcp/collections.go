package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListCollectionsInput is the input schema for list_collections.
type ListCollectionsInput struct{}

// ListCollectionsOutput is the output schema for list_collections.
type ListCollectionsOutput struct {
	CollectionNames []string `json:"collection_names"`
}

// CollectionInput names a single collection.
type CollectionInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection"`
}

func (s *Server) registerCollectionTools() {
	addTool(s, &mcp.Tool{
		Name:        ToolListCollections,
		Description: "List the names of all collections",
		Annotations: readOnly("List collections"),
	}, s.handleListCollections)

	addTool(s, &mcp.Tool{
		Name:        ToolAddCollection,
		Description: "Create a new empty collection. Fails with \"conflict: <detail>\" if the name is already taken.",
		Annotations: additive("Add collection"),
	}, s.handleAddCollection)

	addTool(s, &mcp.Tool{
		Name:        ToolDeleteCollection,
		Description: "Delete a collection and every document in it. Fails with \"not found: <detail>\" if it does not exist.",
		Annotations: destructive("Delete collection"),
	}, s.handleDeleteCollection)
}

func (s *Server) handleListCollections(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCollectionsInput,
) (*mcp.CallToolResult, ListCollectionsOutput, error) {
	names, err := s.ports.Collections.List(ctx)
	if err != nil {
		return nil, ListCollectionsOutput{}, err
	}
	if names == nil {
		names = []string{}
	}
	return nil, ListCollectionsOutput{CollectionNames: names}, nil
}

func (s *Server) handleAddCollection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CollectionInput,
) (*mcp.CallToolResult, MutationOutput, error) {
	if err := s.ports.Collections.Add(ctx, input.CollectionName); err != nil {
		return nil, MutationOutput{}, err
	}
	return nil, success("Collection '%s' added successfully", input.CollectionName), nil
}

func (s *Server) handleDeleteCollection(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CollectionInput,
) (*mcp.CallToolResult, MutationOutput, error) {
	if err := s.ports.Collections.Delete(ctx, input.CollectionName); err != nil {
		return nil, MutationOutput{}, err
	}
	return nil, success("Collection '%s' deleted successfully", input.CollectionName), nil
}
