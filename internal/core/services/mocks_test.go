package services

import (
	"context"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
)

// Ensure mockBackend implements the interface.
var _ driven.Backend = (*mockBackend)(nil)

// mockBackend records the last arguments it received and returns canned values.
type mockBackend struct {
	err   error
	calls int

	collections []string
	lastName    string

	lastDoc       domain.NewDocument
	lastListOpts  domain.ListDocumentsOptions
	lastPageIndex int
	info          *domain.DocumentInfo
	infos         []domain.DocumentInfo
	page          *domain.PageInfo

	docResults     []domain.DocumentResult
	pageResults    []domain.PageResult
	snippetResults []domain.SnippetResult

	lastRerankOpts domain.RerankOptions
	rerankResults  []domain.RerankResult

	lastStatusCollection *string
	status               *domain.IndexingStatus
}

func (m *mockBackend) ListCollections(_ context.Context) ([]string, error) {
	m.calls++
	return m.collections, m.err
}

func (m *mockBackend) AddCollection(_ context.Context, name string) error {
	m.calls++
	m.lastName = name
	return m.err
}

func (m *mockBackend) DeleteCollection(_ context.Context, name string) error {
	m.calls++
	m.lastName = name
	return m.err
}

func (m *mockBackend) AddDocument(_ context.Context, doc domain.NewDocument) error {
	m.calls++
	m.lastDoc = doc
	return m.err
}

func (m *mockBackend) GetDocumentInfo(
	_ context.Context, _, _ string, _ domain.GetDocumentOptions,
) (*domain.DocumentInfo, error) {
	m.calls++
	return m.info, m.err
}

func (m *mockBackend) ListDocumentInfo(
	_ context.Context, _ string, opts domain.ListDocumentsOptions,
) ([]domain.DocumentInfo, error) {
	m.calls++
	m.lastListOpts = opts
	return m.infos, m.err
}

func (m *mockBackend) DeleteDocument(_ context.Context, _, _ string) error {
	m.calls++
	return m.err
}

func (m *mockBackend) GetPageInfo(
	_ context.Context, _, _ string, pageIndex int, _ domain.GetPageOptions,
) (*domain.PageInfo, error) {
	m.calls++
	m.lastPageIndex = pageIndex
	return m.page, m.err
}

func (m *mockBackend) TopDocuments(_ context.Context, _ domain.TopDocumentsQuery) ([]domain.DocumentResult, error) {
	m.calls++
	return m.docResults, m.err
}

func (m *mockBackend) TopPages(_ context.Context, _ domain.TopPagesQuery) ([]domain.PageResult, error) {
	m.calls++
	return m.pageResults, m.err
}

func (m *mockBackend) TopSnippets(_ context.Context, _ domain.TopSnippetsQuery) ([]domain.SnippetResult, error) {
	m.calls++
	return m.snippetResults, m.err
}

func (m *mockBackend) Rerank(
	_ context.Context, _ string, _ []string, opts domain.RerankOptions,
) ([]domain.RerankResult, error) {
	m.calls++
	m.lastRerankOpts = opts
	return m.rerankResults, m.err
}

func (m *mockBackend) GetStatus(_ context.Context, collection *string) (*domain.IndexingStatus, error) {
	m.calls++
	m.lastStatusCollection = collection
	return m.status, m.err
}
