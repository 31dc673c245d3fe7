package mcp

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// mockCollectionService is a mock implementation of driving.CollectionService.
type mockCollectionService struct {
	names   []string
	lastArg string
	err     error
}

func (m *mockCollectionService) List(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockCollectionService) Add(_ context.Context, name string) error {
	m.lastArg = name
	return m.err
}

func (m *mockCollectionService) Delete(_ context.Context, name string) error {
	m.lastArg = name
	return m.err
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	info  *domain.DocumentInfo
	infos []domain.DocumentInfo
	page  *domain.PageInfo
	err   error

	added        domain.NewDocument
	getOpts      domain.GetDocumentOptions
	listOpts     domain.ListDocumentsOptions
	pageIndex    int
	pageOpts     domain.GetPageOptions
	deletedPath  string
	addCallCount int
}

func (m *mockDocumentService) Add(_ context.Context, doc domain.NewDocument) error {
	m.added = doc
	m.addCallCount++
	return m.err
}

func (m *mockDocumentService) GetInfo(
	_ context.Context,
	_, _ string,
	opts domain.GetDocumentOptions,
) (*domain.DocumentInfo, error) {
	m.getOpts = opts
	return m.info, m.err
}

func (m *mockDocumentService) ListInfo(
	_ context.Context,
	_ string,
	opts domain.ListDocumentsOptions,
) ([]domain.DocumentInfo, error) {
	m.listOpts = opts
	return m.infos, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _, path string) error {
	m.deletedPath = path
	return m.err
}

func (m *mockDocumentService) GetPageInfo(
	_ context.Context,
	_, _ string,
	pageIndex int,
	opts domain.GetPageOptions,
) (*domain.PageInfo, error) {
	m.pageIndex = pageIndex
	m.pageOpts = opts
	return m.page, m.err
}

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	documents []domain.DocumentResult
	pages     []domain.PageResult
	snippets  []domain.SnippetResult
	err       error

	lastDocuments domain.TopDocumentsQuery
	lastPages     domain.TopPagesQuery
	lastSnippets  domain.TopSnippetsQuery
}

func (m *mockQueryService) TopDocuments(_ context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error) {
	m.lastDocuments = q
	return m.documents, m.err
}

func (m *mockQueryService) TopPages(_ context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error) {
	m.lastPages = q
	return m.pages, m.err
}

func (m *mockQueryService) TopSnippets(_ context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error) {
	m.lastSnippets = q
	return m.snippets, m.err
}

// mockModelService is a mock implementation of driving.ModelService.
type mockModelService struct {
	results []domain.RerankResult
	err     error

	lastDocuments []string
	lastOpts      domain.RerankOptions
}

func (m *mockModelService) Rerank(
	_ context.Context,
	_ string,
	documents []string,
	opts domain.RerankOptions,
) ([]domain.RerankResult, error) {
	m.lastDocuments = documents
	m.lastOpts = opts
	return m.results, m.err
}

// mockStatusService is a mock implementation of driving.StatusService.
type mockStatusService struct {
	status *domain.IndexingStatus
	err    error

	lastCollection *string
}

func (m *mockStatusService) Get(_ context.Context, collection *string) (*domain.IndexingStatus, error) {
	m.lastCollection = collection
	return m.status, m.err
}

// mockPorts returns a fully populated Ports with fresh mocks.
func mockPorts() *Ports {
	return &Ports{
		Collections: &mockCollectionService{},
		Documents:   &mockDocumentService{},
		Queries:     &mockQueryService{},
		Models:      &mockModelService{},
		Status:      &mockStatusService{status: &domain.IndexingStatus{}},
	}
}
