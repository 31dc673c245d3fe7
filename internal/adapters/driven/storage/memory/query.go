package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
)

// knownModels lists the reranker models the sandbox accepts.
var knownModels = map[string]bool{
	"zerank-1":       true,
	"zerank-1-small": true,
}

// candidate is a scored document considered for a query.
type candidate struct {
	doc *document
	q   map[string]struct{}
}

// candidates validates a query and returns the documents passing the filter,
// in path order. Caller must hold the read lock.
func (b *Backend) candidates(
	collectionName, query string,
	k int,
	filter domain.Filter,
	reranker *string,
	mode *domain.LatencyMode,
) ([]candidate, error) {
	if len(query) > domain.MaxQueryBytes {
		return nil, fmt.Errorf("%w: query exceeds %d bytes", domain.ErrInvalidInput, domain.MaxQueryBytes)
	}
	if k < domain.MinK || k > domain.MaxK {
		return nil, fmt.Errorf("%w: k must be between %d and %d", domain.ErrInvalidInput, domain.MinK, domain.MaxK)
	}
	if mode != nil && !mode.Valid() {
		return nil, fmt.Errorf("%w: latency_mode must be 'low' or 'high', got %q", domain.ErrInvalidInput, *mode)
	}
	if reranker != nil && !knownModels[*reranker] {
		return nil, fmt.Errorf("%w: unknown reranker %q", domain.ErrInvalidInput, *reranker)
	}

	c, ok := b.collections[collectionName]
	if !ok {
		return nil, collectionNotFound(collectionName)
	}

	paths := make([]string, 0, len(c.docs))
	for path := range c.docs {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	qt := terms(query)
	out := make([]candidate, 0, len(paths))
	for _, path := range paths {
		d := c.docs[path]
		if filter != nil {
			ok, err := matchFilter(filter, d.info.Metadata)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, candidate{doc: d, q: qt})
	}
	return out, nil
}

// TopDocuments scores whole documents by query term overlap.
func (b *Backend) TopDocuments(_ context.Context, q domain.TopDocumentsQuery) ([]domain.DocumentResult, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cands, err := b.candidates(q.CollectionName, q.Query, q.K, q.Filter, q.Reranker, q.LatencyMode)
	if err != nil {
		return nil, err
	}

	results := make([]domain.DocumentResult, 0, len(cands))
	for _, c := range cands {
		s := score(c.q, c.doc.content())
		if s == 0 {
			continue
		}
		r := domain.DocumentResult{
			Path:    c.doc.info.Path,
			Score:   s,
			FileURL: c.doc.info.FileURL,
		}
		if q.IncludeMetadata {
			r.Metadata = snapshot(c.doc).Metadata
		}
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return truncate(results, q.K), nil
}

// TopPages scores each page independently.
func (b *Backend) TopPages(_ context.Context, q domain.TopPagesQuery) ([]domain.PageResult, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cands, err := b.candidates(q.CollectionName, q.Query, q.K, q.Filter, nil, q.LatencyMode)
	if err != nil {
		return nil, err
	}

	var results []domain.PageResult
	for _, c := range cands {
		for i, text := range c.doc.pages {
			s := score(c.q, text)
			if s == 0 {
				continue
			}
			r := domain.PageResult{
				Path:      c.doc.info.Path,
				PageIndex: i,
				Score:     s,
			}
			if q.IncludeContent {
				content := text
				r.Content = &content
			}
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return truncate(results, q.K), nil
}

// TopSnippets scores fixed-size spans of document content.
func (b *Backend) TopSnippets(_ context.Context, q domain.TopSnippetsQuery) ([]domain.SnippetResult, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	cands, err := b.candidates(q.CollectionName, q.Query, q.K, q.Filter, q.Reranker, nil)
	if err != nil {
		return nil, err
	}

	size := broadSnippetSize
	if q.PreciseResponses {
		size = preciseSnippetSize
	}

	var results []domain.SnippetResult
	for _, c := range cands {
		content := c.doc.content()
		offsets := pageOffsets(c.doc.pages)
		for _, sp := range windows(content, size) {
			text := content[sp.start:sp.end]
			s := score(c.q, text)
			if s == 0 {
				continue
			}
			r := domain.SnippetResult{
				Path:       c.doc.info.Path,
				StartIndex: sp.start,
				EndIndex:   sp.end,
				PageSpan:   [2]int{pageAt(offsets, sp.start), pageAt(offsets, sp.end-1)},
				Content:    text,
				Score:      s,
			}
			if q.IncludeDocumentMetadata {
				r.Metadata = snapshot(c.doc).Metadata
			}
			results = append(results, r)
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return truncate(results, q.K), nil
}

// Rerank scores each caller-supplied text against query.
// Ties keep input order.
func (b *Backend) Rerank(
	_ context.Context,
	query string,
	documents []string,
	opts domain.RerankOptions,
) ([]domain.RerankResult, error) {
	opts = opts.WithDefaults()
	if !knownModels[opts.Model] {
		return nil, fmt.Errorf("%w: unknown model %q", domain.ErrInvalidInput, opts.Model)
	}
	if opts.TopN != nil && *opts.TopN < 1 {
		return nil, fmt.Errorf("%w: top_n must be positive", domain.ErrInvalidInput)
	}

	qt := terms(query)
	results := make([]domain.RerankResult, len(documents))
	for i, text := range documents {
		results[i] = domain.RerankResult{Index: i, RelevanceScore: score(qt, text)}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if opts.TopN != nil {
		results = truncate(results, *opts.TopN)
	}
	return results, nil
}

// GetStatus counts documents by index state.
func (b *Backend) GetStatus(_ context.Context, collectionName *string) (*domain.IndexingStatus, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var scope []*collection
	if collectionName != nil {
		c, ok := b.collections[*collectionName]
		if !ok {
			return nil, collectionNotFound(*collectionName)
		}
		scope = []*collection{c}
	} else {
		for _, c := range b.collections {
			scope = append(scope, c)
		}
	}

	st := &domain.IndexingStatus{}
	for _, c := range scope {
		for _, d := range c.docs {
			st.NumDocuments++
			switch status := d.info.IndexStatus; {
			case status.Failed():
				st.NumFailedDocuments++
			case status == domain.IndexStatusIndexed:
				st.NumIndexedDocuments++
			case status == domain.IndexStatusParsing || status == domain.IndexStatusNotParsed:
				st.NumParsingDocuments++
			default:
				st.NumIndexingDocuments++
			}
		}
	}
	return st, nil
}

func truncate[T any](s []T, n int) []T {
	if s == nil {
		return []T{}
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}
