package zeroentropy

import (
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// API endpoints, relative to the base URL.
const (
	endpointListCollections  = "/collections/get-collection-list"
	endpointAddCollection    = "/collections/add-collection"
	endpointDeleteCollection = "/collections/delete-collection"
	endpointAddDocument      = "/documents/add-document"
	endpointGetDocumentInfo  = "/documents/get-document-info"
	endpointListDocumentInfo = "/documents/get-document-info-list"
	endpointDeleteDocument   = "/documents/delete-document"
	endpointGetPageInfo      = "/documents/get-page-info"
	endpointTopDocuments     = "/queries/top-documents"
	endpointTopPages         = "/queries/top-pages"
	endpointTopSnippets      = "/queries/top-snippets"
	endpointRerank           = "/models/rerank"
	endpointGetStatus        = "/status/get-status"
)

type collectionRequest struct {
	CollectionName string `json:"collection_name"`
}

type collectionListResponse struct {
	CollectionNames []string `json:"collection_names"`
}

// contentPayload is the tagged content union on the wire.
type contentPayload struct {
	Type       string   `json:"type"`
	Text       *string  `json:"text,omitempty"`
	Pages      []string `json:"pages,omitempty"`
	Base64Data *string  `json:"base64_data,omitempty"`
}

func encodeContent(c domain.DocumentContent) contentPayload {
	p := contentPayload{Type: c.ContentType()}
	switch v := c.(type) {
	case domain.TextContent:
		p.Text = &v.Text
	case domain.TextPagesContent:
		p.Pages = v.Pages
		if p.Pages == nil {
			p.Pages = []string{}
		}
	case domain.BinaryContent:
		p.Base64Data = &v.Base64Data
	}
	return p
}

type addDocumentRequest struct {
	CollectionName string          `json:"collection_name"`
	Path           string          `json:"path"`
	Content        contentPayload  `json:"content"`
	Metadata       domain.Metadata `json:"metadata,omitempty"`
}

type documentRequest struct {
	CollectionName string `json:"collection_name"`
	Path           string `json:"path"`
	IncludeContent *bool  `json:"include_content,omitempty"`
}

type documentListRequest struct {
	CollectionName string  `json:"collection_name"`
	Limit          int     `json:"limit"`
	PathPrefix     *string `json:"path_prefix,omitempty"`
	PathGT         *string `json:"path_gt,omitempty"`
}

type pageRequest struct {
	CollectionName string `json:"collection_name"`
	Path           string `json:"path"`
	PageIndex      int    `json:"page_index"`
	IncludeContent bool   `json:"include_content"`
}

type documentPayload struct {
	ID             string          `json:"id"`
	CollectionName string          `json:"collection_name"`
	Path           string          `json:"path"`
	Metadata       domain.Metadata `json:"metadata"`
	IndexStatus    string          `json:"index_status"`
	CreatedAt      string          `json:"created_at"`
	Size           int64           `json:"size"`
	NumPages       *int            `json:"num_pages"`
	FileURL        string          `json:"file_url"`
	Content        *string         `json:"content"`
}

func (p documentPayload) toDomain() domain.DocumentInfo {
	info := domain.DocumentInfo{
		ID:             p.ID,
		CollectionName: p.CollectionName,
		Path:           p.Path,
		Metadata:       p.Metadata,
		IndexStatus:    domain.IndexStatus(p.IndexStatus),
		CreatedAt:      p.CreatedAt,
		Size:           p.Size,
		FileURL:        p.FileURL,
		Content:        p.Content,
	}
	if p.NumPages != nil {
		info.NumPages = *p.NumPages
	}
	if info.Metadata == nil {
		info.Metadata = domain.Metadata{}
	}
	return info
}

type documentResponse struct {
	Document documentPayload `json:"document"`
}

type documentListResponse struct {
	Documents []documentPayload `json:"documents"`
}

type pagePayload struct {
	CollectionName string  `json:"collection_name"`
	Path           string  `json:"path"`
	PageIndex      int     `json:"page_index"`
	ImageURL       *string `json:"image_url"`
	Content        *string `json:"content"`
}

type pageResponse struct {
	Page pagePayload `json:"page"`
}

type topDocumentsRequest struct {
	CollectionName  string        `json:"collection_name"`
	Query           string        `json:"query"`
	K               int           `json:"k"`
	Filter          domain.Filter `json:"filter,omitempty"`
	IncludeMetadata bool          `json:"include_metadata"`
	Reranker        *string       `json:"reranker,omitempty"`
	LatencyMode     *string       `json:"latency_mode,omitempty"`
}

type topPagesRequest struct {
	CollectionName string        `json:"collection_name"`
	Query          string        `json:"query"`
	K              int           `json:"k"`
	Filter         domain.Filter `json:"filter,omitempty"`
	IncludeContent bool          `json:"include_content"`
	LatencyMode    *string       `json:"latency_mode,omitempty"`
}

type topSnippetsRequest struct {
	CollectionName          string        `json:"collection_name"`
	Query                   string        `json:"query"`
	K                       int           `json:"k"`
	Filter                  domain.Filter `json:"filter,omitempty"`
	Reranker                *string       `json:"reranker,omitempty"`
	PreciseResponses        bool          `json:"precise_responses"`
	IncludeDocumentMetadata bool          `json:"include_document_metadata"`
}

type documentResultPayload struct {
	Path     string          `json:"path"`
	Score    float64         `json:"score"`
	FileURL  string          `json:"file_url"`
	Metadata domain.Metadata `json:"metadata"`
}

type pageResultPayload struct {
	Path      string  `json:"path"`
	PageIndex int     `json:"page_index"`
	Score     float64 `json:"score"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
}

type snippetResultPayload struct {
	Path       string          `json:"path"`
	StartIndex int             `json:"start_index"`
	EndIndex   int             `json:"end_index"`
	PageSpan   [2]int          `json:"page_span"`
	Content    string          `json:"content"`
	Score      float64         `json:"score"`
	Metadata   domain.Metadata `json:"metadata"`
}

type resultsResponse[T any] struct {
	Results []T `json:"results"`
}

type rerankRequest struct {
	Query     string   `json:"query"`
	Documents []string `json:"documents"`
	Model     string   `json:"model"`
	TopN      *int     `json:"top_n,omitempty"`
}

type rerankResultPayload struct {
	Index          int     `json:"index"`
	RelevanceScore float64 `json:"relevance_score"`
}

type statusRequest struct {
	CollectionName *string `json:"collection_name,omitempty"`
}

type statusResponse struct {
	NumDocuments         int `json:"num_documents"`
	NumParsingDocuments  int `json:"num_parsing_documents"`
	NumIndexingDocuments int `json:"num_indexing_documents"`
	NumIndexedDocuments  int `json:"num_indexed_documents"`
	NumFailedDocuments   int `json:"num_failed_documents"`
}

func latencyMode(m *domain.LatencyMode) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}
