package memory

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Snippet window sizes in bytes.
const (
	preciseSnippetSize = 200
	broadSnippetSize   = 2000
)

// terms splits text into a set of lowercase words.
func terms(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(text), isSeparator) {
		set[w] = struct{}{}
	}
	return set
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// score is the fraction of query terms present in text, in [0, 1].
func score(query map[string]struct{}, text string) float64 {
	if len(query) == 0 {
		return 0
	}
	words := terms(text)
	hits := 0
	for q := range query {
		if _, ok := words[q]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(query))
}

// span is a byte range of document content.
type span struct {
	start, end int
}

// windows cuts text into consecutive spans of roughly size bytes without
// splitting a UTF-8 sequence.
func windows(text string, size int) []span {
	var spans []span
	for start := 0; start < len(text); {
		end := start + size
		if end >= len(text) {
			end = len(text)
		} else {
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
			if end == start {
				end = start + size
			}
		}
		spans = append(spans, span{start: start, end: end})
		start = end
	}
	return spans
}

// pageOffsets returns the start offset of each page within the joined content.
func pageOffsets(pages []string) []int {
	offsets := make([]int, len(pages))
	pos := 0
	for i, p := range pages {
		offsets[i] = pos
		pos += len(p) + len(pageSeparator)
	}
	return offsets
}

// pageAt returns the index of the page containing offset.
func pageAt(offsets []int, offset int) int {
	page := 0
	for i, start := range offsets {
		if start > offset {
			break
		}
		page = i
	}
	return page
}
