// Package ingest adapts raw document sources into the plain text and
// offset-to-page map the engine consumes. Real deployments feed the
// engine from a PDF extractor; these adapters cover the common
// interchange formats that extractor emits.
package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"lexlens/internal/model"
)

// Document is ingestion output: plain UTF-8 text plus the page map.
type Document struct {
	Text  string
	Pages model.PageMap
}

// LoadFile reads a document from disk. ".html"/".htm" files go through
// the HTML adapter; everything else is treated as extracted plain text
// with form feeds (\f) separating pages, the convention used by
// pdftotext-style extractors.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
		return FromHTML(string(data))
	}
	return FromText(string(data))
}

// FromText builds a document from extracted plain text. Form feeds
// mark page boundaries; each feed is replaced by a newline so offsets
// stay stable and units never span the removed separator. Text without
// form feeds yields a single-page map covering the whole range.
func FromText(text string) (*Document, error) {
	if !utf8.ValidString(text) {
		return nil, &model.InvalidInputError{Reason: "document is not valid UTF-8"}
	}

	var pages model.PageMap
	page := 1
	start := 0
	clean := []byte(text)
	for i := 0; i < len(clean); i++ {
		if clean[i] != '\f' {
			continue
		}
		clean[i] = '\n'
		if i > start {
			pages.Ranges = append(pages.Ranges, model.PageRange{Start: start, End: i, Page: page})
		}
		page++
		start = i + 1
	}
	if start < len(clean) {
		pages.Ranges = append(pages.Ranges, model.PageRange{Start: start, End: len(clean), Page: page})
	}

	return &Document{Text: string(clean), Pages: pages}, nil
}
