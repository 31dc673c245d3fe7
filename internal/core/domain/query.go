package domain

// LatencyMode trades search speed against result depth.
type LatencyMode string

// Latency modes accepted by the backend.
const (
	LatencyModeLow  LatencyMode = "low"
	LatencyModeHigh LatencyMode = "high"
)

// Valid reports whether m is one of the known latency modes.
func (m LatencyMode) Valid() bool {
	return m == LatencyModeLow || m == LatencyModeHigh
}

// Query limits enforced by the backend.
const (
	MaxQueryBytes = 4096
	MinK          = 1
	MaxK          = 2048
)

// Filter is a metadata predicate. Keys map to a comparison object
// ({"$eq": "x"}), and "$and"/"$or" combine nested filters.
// The tool layer forwards it without interpretation.
type Filter map[string]any

// TopDocumentsQuery requests the top K documents for a query.
type TopDocumentsQuery struct {
	CollectionName  string
	Query           string
	K               int
	Filter          Filter
	IncludeMetadata bool
	Reranker        *string
	LatencyMode     *LatencyMode
}

// TopPagesQuery requests the top K pages for a query.
type TopPagesQuery struct {
	CollectionName string
	Query          string
	K              int
	Filter         Filter
	IncludeContent bool
	LatencyMode    *LatencyMode
}

// TopSnippetsQuery requests the top K snippets for a query.
type TopSnippetsQuery struct {
	CollectionName string
	Query          string
	K              int
	Filter         Filter
	Reranker       *string

	// PreciseResponses biases toward ~200 character snippets instead of ~2000.
	PreciseResponses        bool
	IncludeDocumentMetadata bool
}

// DocumentResult is a ranked document match.
type DocumentResult struct {
	Path     string
	Score    float64
	FileURL  string
	Metadata Metadata
}

// PageResult is a ranked page match.
type PageResult struct {
	Path      string
	PageIndex int
	Score     float64
	Content   *string
	ImageURL  *string
}

// SnippetResult is a ranked span of document content.
type SnippetResult struct {
	Path       string
	StartIndex int
	EndIndex   int
	// PageSpan holds the first and last page (inclusive) the snippet touches.
	PageSpan [2]int
	Content  string
	Score    float64
	Metadata Metadata
}

// RerankResult scores one of the caller-supplied documents.
// Index is the position in the input slice.
type RerankResult struct {
	Index          int
	RelevanceScore float64
}
