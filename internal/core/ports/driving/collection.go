package driving

import "context"

// CollectionService manages collections.
type CollectionService interface {
	// List returns all collection names.
	List(ctx context.Context) ([]string, error)

	// Add creates a new collection.
	Add(ctx context.Context, name string) error

	// Delete removes a collection and its documents.
	Delete(ctx context.Context, name string) error
}
