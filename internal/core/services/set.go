package services

import "github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"

// Set bundles one instance of every service over a shared backend.
type Set struct {
	Collections *CollectionService
	Documents   *DocumentService
	Queries     *QueryService
	Models      *ModelService
	Status      *StatusService
}

// NewSet wires every service to backend. A nil backend yields services that
// fail with domain.ErrNotConfigured (development mode); pass a nil interface,
// not a typed nil pointer.
func NewSet(backend driven.Backend) *Set {
	return &Set{
		Collections: NewCollectionService(backend),
		Documents:   NewDocumentService(backend),
		Queries:     NewQueryService(backend),
		Models:      NewModelService(backend),
		Status:      NewStatusService(backend),
	}
}
