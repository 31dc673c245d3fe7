package domain

import "fmt"

// Content type tags used on the wire.
const (
	ContentTypeText      = "text"
	ContentTypeTextPages = "text-pages"
	ContentTypeAuto      = "auto"
)

// DocumentContent is the payload of a new document.
// It is a closed sum type: TextContent, TextPagesContent and BinaryContent are
// the only implementations.
type DocumentContent interface {
	// ContentType returns the wire tag of the variant.
	ContentType() string

	isDocumentContent()
}

// TextContent is a single plain-text document.
type TextContent struct {
	Text string
}

// TextPagesContent is a document made of ordered page texts.
// Page indices are 0-based in the order given.
type TextPagesContent struct {
	Pages []string
}

// BinaryContent is a base64-encoded file. The backend infers the file type
// from the document path extension and the bytes themselves.
type BinaryContent struct {
	Base64Data string
}

func (TextContent) ContentType() string      { return ContentTypeText }
func (TextPagesContent) ContentType() string { return ContentTypeTextPages }
func (BinaryContent) ContentType() string    { return ContentTypeAuto }

func (TextContent) isDocumentContent()      {}
func (TextPagesContent) isDocumentContent() {}
func (BinaryContent) isDocumentContent()    {}

// ContentFields is the loose, caller-facing shape of document content.
// Exactly one of Text, Pages or Base64Data must be set; Type is optional and,
// when present, must name the same variant.
type ContentFields struct {
	Type       string
	Text       *string
	Pages      []string
	Base64Data *string
}

// ParseContent converts loose content fields into a DocumentContent variant.
// Values matching none or more than one variant are rejected with ErrInvalidInput.
func ParseContent(f ContentFields) (DocumentContent, error) {
	var variants []DocumentContent
	if f.Text != nil {
		variants = append(variants, TextContent{Text: *f.Text})
	}
	if f.Pages != nil {
		variants = append(variants, TextPagesContent{Pages: f.Pages})
	}
	if f.Base64Data != nil {
		variants = append(variants, BinaryContent{Base64Data: *f.Base64Data})
	}

	switch len(variants) {
	case 0:
		return nil, fmt.Errorf("%w: content must contain one of text, pages or base64_data", ErrInvalidInput)
	case 1:
	default:
		return nil, fmt.Errorf("%w: content must contain exactly one of text, pages or base64_data", ErrInvalidInput)
	}

	c := variants[0]
	if f.Type != "" && f.Type != c.ContentType() {
		return nil, fmt.Errorf("%w: content type %q does not match the %s shape", ErrInvalidInput, f.Type, c.ContentType())
	}
	return c, nil
}
