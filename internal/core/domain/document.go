package domain

// IndexStatus is the backend-reported processing state of a document.
// Values outside the known set are passed through unchanged.
type IndexStatus string

// Known index states.
const (
	IndexStatusNotParsed      IndexStatus = "not_parsed"
	IndexStatusParsing        IndexStatus = "parsing"
	IndexStatusNotIndexed     IndexStatus = "not_indexed"
	IndexStatusIndexing       IndexStatus = "indexing"
	IndexStatusIndexed        IndexStatus = "indexed"
	IndexStatusParsingFailed  IndexStatus = "parsing_failed"
	IndexStatusIndexingFailed IndexStatus = "indexing_failed"
)

// Failed reports whether the document can no longer become searchable.
func (s IndexStatus) Failed() bool {
	return s == IndexStatusParsingFailed || s == IndexStatusIndexingFailed
}

// Metadata maps attribute names to a string or a list of strings.
// List-valued attributes use keys prefixed with ListKeyPrefix.
type Metadata map[string]any

// ListKeyPrefix marks metadata keys whose values are string lists.
const ListKeyPrefix = "list:"

// NewDocument is a document submitted for indexing.
type NewDocument struct {
	CollectionName string
	Path           string
	Content        DocumentContent
	Metadata       Metadata
}

// DocumentInfo is a read-only snapshot of a stored document.
// CreatedAt is the backend timestamp as sent, without reparsing.
type DocumentInfo struct {
	ID             string
	CollectionName string
	Path           string
	Metadata       Metadata
	IndexStatus    IndexStatus
	CreatedAt      string
	Size           int64
	NumPages       int
	FileURL        string

	// Content is only populated when requested.
	Content *string
}

// PageInfo is a read-only snapshot of a single document page.
type PageInfo struct {
	CollectionName string
	Path           string
	PageIndex      int
	ImageURL       *string

	// Content is only populated when requested.
	Content *string
}
