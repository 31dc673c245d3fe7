package mcp

import (
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Collections manages collections.
	Collections driving.CollectionService

	// Documents manages documents within collections.
	Documents driving.DocumentService

	// Queries runs semantic search.
	Queries driving.QueryService

	// Models exposes reranking.
	Models driving.ModelService

	// Status reports indexing progress.
	Status driving.StatusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	switch {
	case p.Collections == nil:
		return ErrMissingCollectionService
	case p.Documents == nil:
		return ErrMissingDocumentService
	case p.Queries == nil:
		return ErrMissingQueryService
	case p.Models == nil:
		return ErrMissingModelService
	case p.Status == nil:
		return ErrMissingStatusService
	}
	return nil
}
