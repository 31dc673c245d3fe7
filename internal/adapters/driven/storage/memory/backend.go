package memory

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/zeroentropy-mcp/internal/core/domain"
	"github.com/custodia-labs/zeroentropy-mcp/internal/core/ports/driven"
)

// Ensure Backend implements the interface.
var _ driven.Backend = (*Backend)(nil)

// pageSeparator joins page texts into the full document content.
const pageSeparator = "\n"

// Backend is an in-memory implementation of driven.Backend.
// It follows the hosted API contract closely enough to serve tests and
// local sandbox sessions; documents are indexed synchronously.
type Backend struct {
	mu          sync.RWMutex
	collections map[string]*collection
	now         func() time.Time
}

type collection struct {
	docs map[string]*document
}

type document struct {
	info  domain.DocumentInfo
	pages []string
}

// content returns the full text of the document.
func (d *document) content() string {
	return strings.Join(d.pages, pageSeparator)
}

// Option configures a Backend.
type Option func(*Backend)

// WithClock overrides the clock used for created_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Backend) {
		b.now = now
	}
}

// NewBackend creates an empty in-memory backend.
func NewBackend(opts ...Option) *Backend {
	b := &Backend{
		collections: make(map[string]*collection),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ListCollections returns collection names in lexicographic order.
func (b *Backend) ListCollections(_ context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.collections))
	for name := range b.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// AddCollection creates an empty collection.
func (b *Backend) AddCollection(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.collections[name]; ok {
		return fmt.Errorf("%w: collection %q already exists", domain.ErrAlreadyExists, name)
	}
	b.collections[name] = &collection{docs: make(map[string]*document)}
	return nil
}

// DeleteCollection removes a collection and all its documents.
func (b *Backend) DeleteCollection(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.collections[name]; !ok {
		return collectionNotFound(name)
	}
	delete(b.collections, name)
	return nil
}

// AddDocument stores a document and indexes it immediately.
func (b *Backend) AddDocument(_ context.Context, doc domain.NewDocument) error {
	pages, size, status, err := decodeContent(doc.Content)
	if err != nil {
		return err
	}
	metadata, err := normalizeMetadata(doc.Metadata)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.collections[doc.CollectionName]
	if !ok {
		return collectionNotFound(doc.CollectionName)
	}
	if _, exists := c.docs[doc.Path]; exists {
		return fmt.Errorf("%w: document %q already exists in collection %q",
			domain.ErrAlreadyExists, doc.Path, doc.CollectionName)
	}

	c.docs[doc.Path] = &document{
		info: domain.DocumentInfo{
			ID:             uuid.NewString(),
			CollectionName: doc.CollectionName,
			Path:           doc.Path,
			Metadata:       metadata,
			IndexStatus:    status,
			CreatedAt:      b.now().UTC().Format(time.RFC3339Nano),
			Size:           size,
			NumPages:       len(pages),
			FileURL:        fileURL(doc.CollectionName, doc.Path),
		},
		pages: pages,
	}
	return nil
}

// GetDocumentInfo returns a snapshot of one document.
func (b *Backend) GetDocumentInfo(
	_ context.Context,
	collectionName, path string,
	opts domain.GetDocumentOptions,
) (*domain.DocumentInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, err := b.lookup(collectionName, path)
	if err != nil {
		return nil, err
	}
	info := snapshot(d)
	if opts.IncludeContent {
		content := d.content()
		info.Content = &content
	}
	return &info, nil
}

// ListDocumentInfo returns documents in path order after PathGT, filtered by
// PathPrefix and bounded by Limit.
func (b *Backend) ListDocumentInfo(
	_ context.Context,
	collectionName string,
	opts domain.ListDocumentsOptions,
) ([]domain.DocumentInfo, error) {
	opts = opts.WithDefaults()
	if opts.Limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidInput)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	c, ok := b.collections[collectionName]
	if !ok {
		return nil, collectionNotFound(collectionName)
	}

	paths := make([]string, 0, len(c.docs))
	for path := range c.docs {
		if opts.PathPrefix != nil && !strings.HasPrefix(path, *opts.PathPrefix) {
			continue
		}
		if opts.PathGT != nil && path <= *opts.PathGT {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	if len(paths) > opts.Limit {
		paths = paths[:opts.Limit]
	}

	infos := make([]domain.DocumentInfo, len(paths))
	for i, path := range paths {
		infos[i] = snapshot(c.docs[path])
	}
	return infos, nil
}

// DeleteDocument removes a document.
func (b *Backend) DeleteDocument(_ context.Context, collectionName, path string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.lookup(collectionName, path); err != nil {
		return err
	}
	delete(b.collections[collectionName].docs, path)
	return nil
}

// GetPageInfo returns a snapshot of one page.
func (b *Backend) GetPageInfo(
	_ context.Context,
	collectionName, path string,
	pageIndex int,
	opts domain.GetPageOptions,
) (*domain.PageInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	d, err := b.lookup(collectionName, path)
	if err != nil {
		return nil, err
	}
	if pageIndex < 0 || pageIndex >= len(d.pages) {
		return nil, fmt.Errorf("%w: page %d of document %q (document has %d pages)",
			domain.ErrNotFound, pageIndex, path, len(d.pages))
	}

	page := &domain.PageInfo{
		CollectionName: collectionName,
		Path:           path,
		PageIndex:      pageIndex,
	}
	if opts.IncludeContent {
		content := d.pages[pageIndex]
		page.Content = &content
	}
	return page, nil
}

// lookup finds a document; caller must hold the lock.
func (b *Backend) lookup(collectionName, path string) (*document, error) {
	c, ok := b.collections[collectionName]
	if !ok {
		return nil, collectionNotFound(collectionName)
	}
	d, ok := c.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: document %q does not exist in collection %q",
			domain.ErrNotFound, path, collectionName)
	}
	return d, nil
}

func collectionNotFound(name string) error {
	return fmt.Errorf("%w: collection %q does not exist", domain.ErrNotFound, name)
}

func fileURL(collectionName, path string) string {
	return "memory://" + collectionName + "/" + path
}

// snapshot copies document info so callers cannot mutate stored state.
func snapshot(d *document) domain.DocumentInfo {
	info := d.info
	info.Metadata = make(domain.Metadata, len(d.info.Metadata))
	for k, v := range d.info.Metadata {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		info.Metadata[k] = v
	}
	return info
}

// decodeContent turns a content variant into page texts, byte size and the
// resulting index status. Binary payloads that are not UTF-8 text cannot be
// parsed and are stored with a failed status.
func decodeContent(c domain.DocumentContent) ([]string, int64, domain.IndexStatus, error) {
	switch v := c.(type) {
	case domain.TextContent:
		return []string{v.Text}, int64(len(v.Text)), domain.IndexStatusIndexed, nil
	case domain.TextPagesContent:
		pages := append([]string(nil), v.Pages...)
		var size int64
		for _, p := range pages {
			size += int64(len(p))
		}
		return pages, size, domain.IndexStatusIndexed, nil
	case domain.BinaryContent:
		raw, err := base64.StdEncoding.DecodeString(v.Base64Data)
		if err != nil {
			return nil, 0, "", fmt.Errorf("%w: base64_data is not valid base64: %v", domain.ErrInvalidInput, err)
		}
		if !utf8.Valid(raw) {
			return []string{""}, int64(len(raw)), domain.IndexStatusParsingFailed, nil
		}
		return []string{string(raw)}, int64(len(raw)), domain.IndexStatusIndexed, nil
	default:
		return nil, 0, "", fmt.Errorf("%w: document content is required", domain.ErrInvalidInput)
	}
}

// normalizeMetadata validates metadata values: list-prefixed keys hold string
// lists, every other key holds a string.
func normalizeMetadata(m domain.Metadata) (domain.Metadata, error) {
	out := make(domain.Metadata, len(m))
	for key, value := range m {
		isList := strings.HasPrefix(key, domain.ListKeyPrefix)
		switch v := value.(type) {
		case string:
			if isList {
				return nil, fmt.Errorf("%w: metadata %q must be a list of strings", domain.ErrInvalidInput, key)
			}
			out[key] = v
		case []string:
			if !isList {
				return nil, fmt.Errorf("%w: metadata %q holds a list but lacks the %q prefix",
					domain.ErrInvalidInput, key, domain.ListKeyPrefix)
			}
			out[key] = append([]string(nil), v...)
		case []any:
			if !isList {
				return nil, fmt.Errorf("%w: metadata %q holds a list but lacks the %q prefix",
					domain.ErrInvalidInput, key, domain.ListKeyPrefix)
			}
			list, ok := stringList(v)
			if !ok {
				return nil, fmt.Errorf("%w: metadata %q must be a list of strings", domain.ErrInvalidInput, key)
			}
			out[key] = list
		default:
			return nil, fmt.Errorf("%w: metadata %q must be a string or list of strings", domain.ErrInvalidInput, key)
		}
	}
	return out, nil
}

func stringList(values []any) ([]string, bool) {
	out := make([]string, len(values))
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
