// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes the ZeroEntropy collections, documents, queries, models and
// status operations as typed MCP tools and resources.
package mcp

import "errors"

// Errors returned by Ports.Validate when a service is missing.
var (
	ErrMissingCollectionService = errors.New("mcp: collection service is required")
	ErrMissingDocumentService   = errors.New("mcp: document service is required")
	ErrMissingQueryService      = errors.New("mcp: query service is required")
	ErrMissingModelService      = errors.New("mcp: model service is required")
	ErrMissingStatusService     = errors.New("mcp: status service is required")
)
