package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ZeroEntropy resources.
	uriScheme = "zeroentropy://"

	jsonMIMEType = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "Names of all collections",
		MIMEType:    jsonMIMEType,
	}, s.handleCollectionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Indexing status across all collections",
		MIMEType:    jsonMIMEType,
	}, s.handleStatusResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "collections/{collection}/status",
		Name:        "collection-status",
		Description: "Indexing status of a single collection",
		MIMEType:    jsonMIMEType,
	}, s.handleCollectionStatusResource)
}

// handleCollectionsResource returns the collection names.
func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Collections.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return jsonResource(req.Params.URI, names)
}

// handleStatusResource returns the aggregate indexing status.
func (s *Server) handleStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	st, err := s.ports.Status.Get(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return jsonResource(req.Params.URI, toStatusOutput(st))
}

// handleCollectionStatusResource returns the indexing status of one collection.
func (s *Server) handleCollectionStatusResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract collection from URI: zeroentropy://collections/{collection}/status
	name := extractCollectionName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	st, err := s.ports.Status.Get(ctx, &name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting status: %w", err)
	}
	return jsonResource(req.Params.URI, toStatusOutput(st))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIMEType,
			Text:     string(data),
		}},
	}, nil
}

// extractCollectionName extracts the collection from a URI like
// zeroentropy://collections/{collection}/status. The segment is percent-decoded.
func extractCollectionName(uri string) string {
	const prefix = uriScheme + "collections/"
	const suffix = "/status"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimSuffix(uri, suffix))
	if err != nil {
		return ""
	}
	return name
}
