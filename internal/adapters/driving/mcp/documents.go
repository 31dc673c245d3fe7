package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// ContentInput is the document payload. Exactly one of text, pages or
// base64_data must be set.
type ContentInput struct {
	Type       string   `json:"type,omitempty" jsonschema:"optional content tag: text, text-pages or auto; must agree with the field that is set"`
	Text       *string  `json:"text,omitempty" jsonschema:"plain text of a single-page document"`
	Pages      []string `json:"pages,omitempty" jsonschema:"page texts of a paginated document; the first page has index 0"`
	Base64Data *string  `json:"base64_data,omitempty" jsonschema:"base64 file bytes; the file type is deduced from the path extension and the data"`
}

// AddDocumentInput is the input schema for add_document.
type AddDocumentInput struct {
	CollectionName string         `json:"collection_name" jsonschema:"collection to add the document to"`
	Path           string         `json:"path" jsonschema:"unique path of the document within the collection"`
	Content        ContentInput   `json:"content" jsonschema:"document content"`
	Metadata       map[string]any `json:"metadata,omitempty" jsonschema:"string attributes; keys starting with list: hold lists of strings"`
}

// DocumentInput addresses a single document.
type DocumentInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection"`
	Path           string `json:"path" jsonschema:"path of the document"`
}

// GetDocumentInfoInput is the input schema for get_document_info.
type GetDocumentInfoInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection"`
	Path           string `json:"path" jsonschema:"path of the document"`
	IncludeContent bool   `json:"include_content,omitempty" jsonschema:"include the parsed document text (default false)"`
}

// ListDocumentInfoInput is the input schema for list_document_info.
type ListDocumentInfoInput struct {
	CollectionName string  `json:"collection_name" jsonschema:"name of the collection"`
	Limit          int     `json:"limit,omitempty" jsonschema:"maximum number of documents to return (default 1024)"`
	PathPrefix     *string `json:"path_prefix,omitempty" jsonschema:"only return documents whose path starts with this prefix"`
	PathGT         *string `json:"path_gt,omitempty" jsonschema:"only return documents whose path sorts strictly after this value; use the last path of the previous page to paginate"`
}

// GetPageInfoInput is the input schema for get_page_info.
type GetPageInfoInput struct {
	CollectionName string `json:"collection_name" jsonschema:"name of the collection"`
	Path           string `json:"path" jsonschema:"path of the document"`
	PageIndex      int    `json:"page_index" jsonschema:"0-based page number"`
	IncludeContent bool   `json:"include_content,omitempty" jsonschema:"include the page text (default false)"`
}

// DocumentInfoOutput is a document snapshot. Every attribute is always present.
type DocumentInfoOutput struct {
	ID             string         `json:"id"`
	CollectionName string         `json:"collection_name"`
	Path           string         `json:"path"`
	Metadata       map[string]any `json:"metadata"`
	IndexStatus    string         `json:"index_status"`
	CreatedAt      string         `json:"created_at"`
	Size           int64          `json:"size"`
	NumPages       int            `json:"num_pages"`
	FileURL        string         `json:"file_url"`
	Content        *string        `json:"content"`
}

// ListDocumentInfoOutput is the output schema for list_document_info.
type ListDocumentInfoOutput struct {
	Documents []DocumentInfoOutput `json:"documents"`
}

// PageInfoOutput is a page snapshot.
type PageInfoOutput struct {
	CollectionName string  `json:"collection_name"`
	Path           string  `json:"path"`
	PageIndex      int     `json:"page_index"`
	ImageURL       *string `json:"image_url"`
	Content        *string `json:"content"`
}

func (s *Server) registerDocumentTools() {
	addTool(s, &mcp.Tool{
		Name: ToolAddDocument,
		Description: "Add a document to a collection. Content is exactly one of {text}, {pages} or {base64_data}. " +
			"Fails with \"not found: <detail>\" if the collection does not exist and \"conflict: <detail>\" if the path is taken.",
		Annotations: additive("Add document"),
	}, s.handleAddDocument)

	addTool(s, &mcp.Tool{
		Name:        ToolGetDocumentInfo,
		Description: "Get the metadata, index status and optionally the content of a document",
		Annotations: readOnly("Get document info"),
	}, s.handleGetDocumentInfo)

	addTool(s, &mcp.Tool{
		Name:        ToolListDocumentInfo,
		Description: "List documents in a collection ordered by path, with optional prefix filter and path_gt pagination",
		Annotations: readOnly("List documents"),
	}, s.handleListDocumentInfo)

	addTool(s, &mcp.Tool{
		Name:        ToolDeleteDocument,
		Description: "Delete a document from a collection. Fails with \"not found: <detail>\" if it does not exist.",
		Annotations: destructive("Delete document"),
	}, s.handleDeleteDocument)

	addTool(s, &mcp.Tool{
		Name:        ToolGetPageInfo,
		Description: "Get information about a single page of a document",
		Annotations: readOnly("Get page info"),
	}, s.handleGetPageInfo)
}

func (s *Server) handleAddDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentInput,
) (*mcp.CallToolResult, MutationOutput, error) {
	content, err := domain.ParseContent(domain.ContentFields{
		Type:       input.Content.Type,
		Text:       input.Content.Text,
		Pages:      input.Content.Pages,
		Base64Data: input.Content.Base64Data,
	})
	if err != nil {
		return nil, MutationOutput{}, err
	}

	doc := domain.NewDocument{
		CollectionName: input.CollectionName,
		Path:           input.Path,
		Content:        content,
		Metadata:       domain.Metadata(input.Metadata),
	}
	if err := s.ports.Documents.Add(ctx, doc); err != nil {
		return nil, MutationOutput{}, err
	}
	return nil, success("Document '%s' added to collection '%s'", input.Path, input.CollectionName), nil
}

func (s *Server) handleGetDocumentInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetDocumentInfoInput,
) (*mcp.CallToolResult, DocumentInfoOutput, error) {
	info, err := s.ports.Documents.GetInfo(ctx, input.CollectionName, input.Path, domain.GetDocumentOptions{
		IncludeContent: input.IncludeContent,
	})
	if err != nil {
		return nil, DocumentInfoOutput{}, err
	}
	return nil, toDocumentInfoOutput(info), nil
}

func (s *Server) handleListDocumentInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDocumentInfoInput,
) (*mcp.CallToolResult, ListDocumentInfoOutput, error) {
	docs, err := s.ports.Documents.ListInfo(ctx, input.CollectionName, domain.ListDocumentsOptions{
		Limit:      input.Limit,
		PathPrefix: input.PathPrefix,
		PathGT:     input.PathGT,
	})
	if err != nil {
		return nil, ListDocumentInfoOutput{}, err
	}

	output := ListDocumentInfoOutput{
		Documents: make([]DocumentInfoOutput, len(docs)),
	}
	for i := range docs {
		output.Documents[i] = toDocumentInfoOutput(&docs[i])
	}
	return nil, output, nil
}

func (s *Server) handleDeleteDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, MutationOutput, error) {
	if err := s.ports.Documents.Delete(ctx, input.CollectionName, input.Path); err != nil {
		return nil, MutationOutput{}, err
	}
	return nil, success("Document '%s' deleted from collection '%s'", input.Path, input.CollectionName), nil
}

func (s *Server) handleGetPageInfo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetPageInfoInput,
) (*mcp.CallToolResult, PageInfoOutput, error) {
	page, err := s.ports.Documents.GetPageInfo(ctx, input.CollectionName, input.Path, input.PageIndex,
		domain.GetPageOptions{IncludeContent: input.IncludeContent})
	if err != nil {
		return nil, PageInfoOutput{}, err
	}
	return nil, PageInfoOutput{
		CollectionName: page.CollectionName,
		Path:           page.Path,
		PageIndex:      page.PageIndex,
		ImageURL:       page.ImageURL,
		Content:        page.Content,
	}, nil
}

func toDocumentInfoOutput(info *domain.DocumentInfo) DocumentInfoOutput {
	return DocumentInfoOutput{
		ID:             info.ID,
		CollectionName: info.CollectionName,
		Path:           info.Path,
		Metadata:       metadataOutput(info.Metadata),
		IndexStatus:    string(info.IndexStatus),
		CreatedAt:      info.CreatedAt,
		Size:           info.Size,
		NumPages:       info.NumPages,
		FileURL:        info.FileURL,
		Content:        info.Content,
	}
}

// metadataOutput returns a non-nil copy so metadata always serializes as an object.
func metadataOutput(m domain.Metadata) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
