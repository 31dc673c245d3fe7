package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func strPtr(s string) *string { return &s }

func TestServer_CollectionTools(t *testing.T) {
	ctx := context.Background()

	t.Run("list wraps names", func(t *testing.T) {
		ports := mockPorts()
		ports.Collections = &mockCollectionService{names: []string{"a", "b"}}
		server := newTestServer(t, ports)

		_, output, err := server.handleListCollections(ctx, nil, ListCollectionsInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, output.CollectionNames)
	})

	t.Run("list never returns nil", func(t *testing.T) {
		server := newTestServer(t, mockPorts())

		_, output, err := server.handleListCollections(ctx, nil, ListCollectionsInput{})

		require.NoError(t, err)
		assert.NotNil(t, output.CollectionNames)
	})

	t.Run("add reports success", func(t *testing.T) {
		mock := &mockCollectionService{}
		ports := mockPorts()
		ports.Collections = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleAddCollection(ctx, nil, CollectionInput{CollectionName: "docs"})

		require.NoError(t, err)
		assert.True(t, output.Success)
		assert.Equal(t, "Collection 'docs' added successfully", output.Message)
		assert.Equal(t, "docs", mock.lastArg)
	})

	t.Run("delete reports success", func(t *testing.T) {
		server := newTestServer(t, mockPorts())

		_, output, err := server.handleDeleteCollection(ctx, nil, CollectionInput{CollectionName: "docs"})

		require.NoError(t, err)
		assert.True(t, output.Success)
		assert.Equal(t, "Collection 'docs' deleted successfully", output.Message)
	})
}

func TestServer_handleAddDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("text content", func(t *testing.T) {
		mock := &mockDocumentService{}
		ports := mockPorts()
		ports.Documents = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleAddDocument(ctx, nil, AddDocumentInput{
			CollectionName: "docs",
			Path:           "a.txt",
			Content:        ContentInput{Type: "text", Text: strPtr("hello")},
			Metadata:       map[string]any{"author": "ann"},
		})

		require.NoError(t, err)
		assert.True(t, output.Success)
		assert.Equal(t, "Document 'a.txt' added to collection 'docs'", output.Message)
		assert.Equal(t, domain.TextContent{Text: "hello"}, mock.added.Content)
		assert.Equal(t, domain.Metadata{"author": "ann"}, mock.added.Metadata)
		assert.Equal(t, "docs", mock.added.CollectionName)
		assert.Equal(t, "a.txt", mock.added.Path)
	})

	t.Run("pages content", func(t *testing.T) {
		mock := &mockDocumentService{}
		ports := mockPorts()
		ports.Documents = mock
		server := newTestServer(t, ports)

		_, _, err := server.handleAddDocument(ctx, nil, AddDocumentInput{
			CollectionName: "docs",
			Path:           "b.txt",
			Content:        ContentInput{Pages: []string{"A", "B"}},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.TextPagesContent{Pages: []string{"A", "B"}}, mock.added.Content)
	})

	t.Run("binary content", func(t *testing.T) {
		mock := &mockDocumentService{}
		ports := mockPorts()
		ports.Documents = mock
		server := newTestServer(t, ports)

		_, _, err := server.handleAddDocument(ctx, nil, AddDocumentInput{
			CollectionName: "docs",
			Path:           "c.png",
			Content:        ContentInput{Type: "auto", Base64Data: strPtr("aGk=")},
		})

		require.NoError(t, err)
		assert.Equal(t, domain.BinaryContent{Base64Data: "aGk="}, mock.added.Content)
	})

	invalid := []struct {
		name    string
		content ContentInput
	}{
		{"no shape", ContentInput{}},
		{"two shapes", ContentInput{Text: strPtr("x"), Pages: []string{"y"}}},
		{"type mismatch", ContentInput{Type: "text-pages", Text: strPtr("x")}},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			mock := &mockDocumentService{}
			ports := mockPorts()
			ports.Documents = mock
			server := newTestServer(t, ports)

			_, _, err := server.handleAddDocument(ctx, nil, AddDocumentInput{
				CollectionName: "docs", Path: "x", Content: tt.content,
			})

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, 0, mock.addCallCount)
		})
	}
}

func TestServer_handleGetDocumentInfo(t *testing.T) {
	ctx := context.Background()

	mock := &mockDocumentService{
		info: &domain.DocumentInfo{
			ID:             "id-1",
			CollectionName: "docs",
			Path:           "a.txt",
			IndexStatus:    domain.IndexStatusIndexed,
			CreatedAt:      "2025-01-02T03:04:05Z",
			Size:           5,
			NumPages:       1,
			FileURL:        "https://files.example/a.txt",
			Content:        strPtr("hello"),
		},
	}
	ports := mockPorts()
	ports.Documents = mock
	server := newTestServer(t, ports)

	_, output, err := server.handleGetDocumentInfo(ctx, nil, GetDocumentInfoInput{
		CollectionName: "docs", Path: "a.txt", IncludeContent: true,
	})

	require.NoError(t, err)
	assert.True(t, mock.getOpts.IncludeContent)
	assert.Equal(t, DocumentInfoOutput{
		ID:             "id-1",
		CollectionName: "docs",
		Path:           "a.txt",
		Metadata:       map[string]any{},
		IndexStatus:    "indexed",
		CreatedAt:      "2025-01-02T03:04:05Z",
		Size:           5,
		NumPages:       1,
		FileURL:        "https://files.example/a.txt",
		Content:        strPtr("hello"),
	}, output)
}

func TestServer_handleListDocumentInfo(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards options", func(t *testing.T) {
		mock := &mockDocumentService{
			infos: []domain.DocumentInfo{{Path: "doc6"}, {Path: "doc7"}},
		}
		ports := mockPorts()
		ports.Documents = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleListDocumentInfo(ctx, nil, ListDocumentInfoInput{
			CollectionName: "docs",
			Limit:          2,
			PathPrefix:     strPtr("doc"),
			PathGT:         strPtr("doc5"),
		})

		require.NoError(t, err)
		require.Len(t, output.Documents, 2)
		assert.Equal(t, "doc6", output.Documents[0].Path)
		assert.Equal(t, 2, mock.listOpts.Limit)
		assert.Equal(t, "doc", *mock.listOpts.PathPrefix)
		assert.Equal(t, "doc5", *mock.listOpts.PathGT)
	})

	t.Run("empty result is an empty list", func(t *testing.T) {
		server := newTestServer(t, mockPorts())

		_, output, err := server.handleListDocumentInfo(ctx, nil, ListDocumentInfoInput{CollectionName: "docs"})

		require.NoError(t, err)
		assert.NotNil(t, output.Documents)
		assert.Empty(t, output.Documents)
	})
}

func TestServer_handleGetPageInfo(t *testing.T) {
	ctx := context.Background()
	mock := &mockDocumentService{
		page: &domain.PageInfo{CollectionName: "docs", Path: "p", PageIndex: 1, Content: strPtr("B")},
	}
	ports := mockPorts()
	ports.Documents = mock
	server := newTestServer(t, ports)

	_, output, err := server.handleGetPageInfo(ctx, nil, GetPageInfoInput{
		CollectionName: "docs", Path: "p", PageIndex: 1, IncludeContent: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, mock.pageIndex)
	assert.True(t, mock.pageOpts.IncludeContent)
	assert.Equal(t, "B", *output.Content)
	assert.Nil(t, output.ImageURL)
}

func TestServer_QueryTools(t *testing.T) {
	ctx := context.Background()

	t.Run("top documents forwards every field", func(t *testing.T) {
		mock := &mockQueryService{
			documents: []domain.DocumentResult{
				{Path: "a", Score: 0.9, FileURL: "u", Metadata: domain.Metadata{"k": "v"}},
				{Path: "b", Score: 0.5},
			},
		}
		ports := mockPorts()
		ports.Queries = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleTopDocuments(ctx, nil, TopDocumentsInput{
			CollectionName:  "docs",
			Query:           "q",
			K:               5,
			Filter:          map[string]any{"k": map[string]any{"$eq": "v"}},
			IncludeMetadata: true,
			Reranker:        strPtr("zerank-1"),
			LatencyMode:     strPtr("high"),
		})

		require.NoError(t, err)
		require.Len(t, output.Results, 2)
		assert.Equal(t, map[string]any{"k": "v"}, output.Results[0].Metadata)
		assert.Nil(t, output.Results[1].Metadata)

		q := mock.lastDocuments
		assert.Equal(t, "docs", q.CollectionName)
		assert.Equal(t, 5, q.K)
		assert.True(t, q.IncludeMetadata)
		assert.Equal(t, "zerank-1", *q.Reranker)
		assert.Equal(t, domain.LatencyModeHigh, *q.LatencyMode)
		assert.Equal(t, domain.Filter{"k": map[string]any{"$eq": "v"}}, q.Filter)
	})

	t.Run("unknown latency mode is forwarded", func(t *testing.T) {
		mock := &mockQueryService{}
		ports := mockPorts()
		ports.Queries = mock
		server := newTestServer(t, ports)

		_, _, err := server.handleTopPages(ctx, nil, TopPagesInput{
			CollectionName: "docs", Query: "q", K: 1, LatencyMode: strPtr("medium"),
		})

		require.NoError(t, err)
		assert.Equal(t, domain.LatencyMode("medium"), *mock.lastPages.LatencyMode)
	})

	t.Run("latency mode omitted", func(t *testing.T) {
		mock := &mockQueryService{}
		ports := mockPorts()
		ports.Queries = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleTopPages(ctx, nil, TopPagesInput{CollectionName: "docs", Query: "q", K: 1})

		require.NoError(t, err)
		assert.Nil(t, mock.lastPages.LatencyMode)
		assert.NotNil(t, output.Results)
	})

	t.Run("top snippets", func(t *testing.T) {
		mock := &mockQueryService{
			snippets: []domain.SnippetResult{
				{Path: "a", StartIndex: 10, EndIndex: 20, PageSpan: [2]int{0, 1}, Content: "text", Score: 0.7},
			},
		}
		ports := mockPorts()
		ports.Queries = mock
		server := newTestServer(t, ports)

		_, output, err := server.handleTopSnippets(ctx, nil, TopSnippetsInput{
			CollectionName: "docs", Query: "q", K: 3, PreciseResponses: true, IncludeDocumentMetadata: true,
		})

		require.NoError(t, err)
		require.Len(t, output.Results, 1)
		assert.Equal(t, [2]int{0, 1}, output.Results[0].PageSpan)
		assert.True(t, mock.lastSnippets.PreciseResponses)
		assert.True(t, mock.lastSnippets.IncludeDocumentMetadata)
	})
}

func TestServer_handleRerank(t *testing.T) {
	ctx := context.Background()
	mock := &mockModelService{
		results: []domain.RerankResult{{Index: 1, RelevanceScore: 0.8}, {Index: 0, RelevanceScore: 0.1}},
	}
	ports := mockPorts()
	ports.Models = mock
	server := newTestServer(t, ports)
	n := 2

	_, output, err := server.handleRerank(ctx, nil, RerankInput{
		Query: "q", Documents: []string{"x", "y"}, TopN: &n,
	})

	require.NoError(t, err)
	assert.Equal(t, []RerankResultOutput{{Index: 1, RelevanceScore: 0.8}, {Index: 0, RelevanceScore: 0.1}}, output.Results)
	assert.Equal(t, []string{"x", "y"}, mock.lastDocuments)
	assert.Equal(t, "", mock.lastOpts.Model)
	assert.Equal(t, 2, *mock.lastOpts.TopN)
}

func TestServer_handleGetIndexingStatus(t *testing.T) {
	ctx := context.Background()
	mock := &mockStatusService{
		status: &domain.IndexingStatus{NumDocuments: 4, NumIndexedDocuments: 3, NumFailedDocuments: 1},
	}
	ports := mockPorts()
	ports.Status = mock
	server := newTestServer(t, ports)

	_, output, err := server.handleGetIndexingStatus(ctx, nil, StatusInput{CollectionName: strPtr("docs")})

	require.NoError(t, err)
	assert.Equal(t, StatusOutput{NumDocuments: 4, NumIndexedDocuments: 3, NumFailedDocuments: 1}, output)
	assert.Equal(t, "docs", *mock.lastCollection)

	_, _, err = server.handleGetIndexingStatus(ctx, nil, StatusInput{})
	require.NoError(t, err)
	assert.Nil(t, mock.lastCollection)
}

// Every tool surfaces the service error unchanged.
func TestServer_ToolsPropagateErrors(t *testing.T) {
	ctx := context.Background()
	notFound := errors.New("not found: collection 'missing' does not exist")
	wrapped := errors.Join(domain.ErrNotFound, notFound)

	ports := &Ports{
		Collections: &mockCollectionService{err: wrapped},
		Documents:   &mockDocumentService{err: wrapped},
		Queries:     &mockQueryService{err: wrapped},
		Models:      &mockModelService{err: wrapped},
		Status:      &mockStatusService{err: wrapped},
	}
	server := newTestServer(t, ports)
	text := strPtr("x")

	calls := map[string]func() error{
		ToolListCollections: func() error {
			_, _, err := server.handleListCollections(ctx, nil, ListCollectionsInput{})
			return err
		},
		ToolAddCollection: func() error {
			_, _, err := server.handleAddCollection(ctx, nil, CollectionInput{CollectionName: "missing"})
			return err
		},
		ToolDeleteCollection: func() error {
			_, _, err := server.handleDeleteCollection(ctx, nil, CollectionInput{CollectionName: "missing"})
			return err
		},
		ToolAddDocument: func() error {
			_, _, err := server.handleAddDocument(ctx, nil, AddDocumentInput{
				CollectionName: "missing", Path: "a", Content: ContentInput{Text: text},
			})
			return err
		},
		ToolGetDocumentInfo: func() error {
			_, _, err := server.handleGetDocumentInfo(ctx, nil, GetDocumentInfoInput{CollectionName: "missing", Path: "a"})
			return err
		},
		ToolListDocumentInfo: func() error {
			_, _, err := server.handleListDocumentInfo(ctx, nil, ListDocumentInfoInput{CollectionName: "missing"})
			return err
		},
		ToolDeleteDocument: func() error {
			_, _, err := server.handleDeleteDocument(ctx, nil, DocumentInput{CollectionName: "missing", Path: "a"})
			return err
		},
		ToolGetPageInfo: func() error {
			_, _, err := server.handleGetPageInfo(ctx, nil, GetPageInfoInput{CollectionName: "missing", Path: "a"})
			return err
		},
		ToolSearchTopDocuments: func() error {
			_, _, err := server.handleTopDocuments(ctx, nil, TopDocumentsInput{CollectionName: "missing", Query: "q", K: 1})
			return err
		},
		ToolSearchTopPages: func() error {
			_, _, err := server.handleTopPages(ctx, nil, TopPagesInput{CollectionName: "missing", Query: "q", K: 1})
			return err
		},
		ToolSearchTopSnippets: func() error {
			_, _, err := server.handleTopSnippets(ctx, nil, TopSnippetsInput{CollectionName: "missing", Query: "q", K: 1})
			return err
		},
		ToolRerankDocuments: func() error {
			_, _, err := server.handleRerank(ctx, nil, RerankInput{Query: "q", Documents: []string{"a"}})
			return err
		},
		ToolGetIndexingStatus: func() error {
			_, _, err := server.handleGetIndexingStatus(ctx, nil, StatusInput{CollectionName: strPtr("missing")})
			return err
		},
	}

	require.Len(t, calls, len(server.Tools()))
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.Same(t, wrapped, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
		})
	}
}
