package domain

// Default values for optional operation parameters.
const (
	DefaultListLimit   = 1024
	DefaultRerankModel = "zerank-1"
)

// GetDocumentOptions configures a document info lookup.
type GetDocumentOptions struct {
	// IncludeContent returns the raw document content.
	IncludeContent bool
}

// ListDocumentsOptions configures a paginated document listing.
type ListDocumentsOptions struct {
	// Limit bounds the number of documents returned (default 1024).
	// The upper bound is enforced by the backend.
	Limit int

	// PathPrefix restricts results to paths starting with this prefix.
	PathPrefix *string

	// PathGT returns only paths lexicographically greater than this value.
	PathGT *string
}

// WithDefaults returns a copy with unset fields replaced by defaults.
func (o ListDocumentsOptions) WithDefaults() ListDocumentsOptions {
	if o.Limit == 0 {
		o.Limit = DefaultListLimit
	}
	return o
}

// GetPageOptions configures a page info lookup.
type GetPageOptions struct {
	IncludeContent bool
}

// RerankOptions configures a rerank call.
type RerankOptions struct {
	// Model is the reranker model ID (default zerank-1).
	Model string

	// TopN truncates the results to the N most relevant when set.
	TopN *int
}

// WithDefaults returns a copy with unset fields replaced by defaults.
func (o RerankOptions) WithDefaults() RerankOptions {
	if o.Model == "" {
		o.Model = DefaultRerankModel
	}
	return o
}
