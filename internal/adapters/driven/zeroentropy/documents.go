package zeroentropy

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// AddDocument submits a document. The content variant is sent with its wire tag.
func (c *Client) AddDocument(ctx context.Context, doc domain.NewDocument) error {
	req := addDocumentRequest{
		CollectionName: doc.CollectionName,
		Path:           doc.Path,
		Content:        encodeContent(doc.Content),
		Metadata:       doc.Metadata,
	}
	return c.post(ctx, endpointAddDocument, req, nil)
}

// GetDocumentInfo returns a snapshot of one document.
func (c *Client) GetDocumentInfo(
	ctx context.Context,
	collection, path string,
	opts domain.GetDocumentOptions,
) (*domain.DocumentInfo, error) {
	req := documentRequest{
		CollectionName: collection,
		Path:           path,
		IncludeContent: &opts.IncludeContent,
	}

	var resp documentResponse
	if err := c.post(ctx, endpointGetDocumentInfo, req, &resp); err != nil {
		return nil, err
	}
	info := resp.Document.toDomain()
	return &info, nil
}

// ListDocumentInfo returns documents ordered by path.
func (c *Client) ListDocumentInfo(
	ctx context.Context,
	collection string,
	opts domain.ListDocumentsOptions,
) ([]domain.DocumentInfo, error) {
	opts = opts.WithDefaults()
	req := documentListRequest{
		CollectionName: collection,
		Limit:          opts.Limit,
		PathPrefix:     opts.PathPrefix,
		PathGT:         opts.PathGT,
	}

	var resp documentListResponse
	if err := c.post(ctx, endpointListDocumentInfo, req, &resp); err != nil {
		return nil, err
	}

	docs := make([]domain.DocumentInfo, len(resp.Documents))
	for i := range resp.Documents {
		docs[i] = resp.Documents[i].toDomain()
	}
	return docs, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, collection, path string) error {
	req := documentRequest{CollectionName: collection, Path: path}
	return c.post(ctx, endpointDeleteDocument, req, nil)
}

// GetPageInfo returns a snapshot of one page.
func (c *Client) GetPageInfo(
	ctx context.Context,
	collection, path string,
	pageIndex int,
	opts domain.GetPageOptions,
) (*domain.PageInfo, error) {
	req := pageRequest{
		CollectionName: collection,
		Path:           path,
		PageIndex:      pageIndex,
		IncludeContent: opts.IncludeContent,
	}

	var resp pageResponse
	if err := c.post(ctx, endpointGetPageInfo, req, &resp); err != nil {
		return nil, err
	}
	return &domain.PageInfo{
		CollectionName: resp.Page.CollectionName,
		Path:           resp.Page.Path,
		PageIndex:      resp.Page.PageIndex,
		ImageURL:       resp.Page.ImageURL,
		Content:        resp.Page.Content,
	}, nil
}
