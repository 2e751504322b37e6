package ingest

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"lexlens/internal/model"
)

// FromHTML builds a document from HTML, keeping only visible text.
// HTML sources carry no page structure, so the page map is empty and
// every clause resolves to "page unknown".
func FromHTML(content string) (*Document, error) {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil, &model.InvalidInputError{Reason: fmt.Sprintf("parse html: %v", err)}
	}
	return &Document{Text: visibleText(doc)}, nil
}

// visibleText extracts text nodes, skipping non-content tags. Block
// elements end their text with a newline so the segmenter sees
// paragraph boundaries.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "br", "h1", "h2", "h3", "h4", "section", "article", "tr":
				buf.WriteString("\n")
			}
		}
	}

	walk(n)
	return strings.TrimSpace(buf.String())
}
