// Package htmldoc extracts calibration lines from HTML documents.
//
// Every block-level element (paragraphs, list items, headings, table rows,
// leaf divs) becomes one line; <br> starts a new line and each line of a
// <pre> block is kept as its own line. Script, style and similar non-content
// elements are skipped.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to the text lines of an HTML document.
type Reader struct {
	doc   *html.Node
	title string
	lines []string
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{doc: doc}
	reader.extractHead(doc)

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	c := &lineCollector{}
	c.traverse(body)
	c.flush()
	reader.lines = c.lines

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the content of the <title> element, if any.
func (r *Reader) Title() string {
	return r.title
}

// Lines returns the non-empty text lines of the document body in order.
func (r *Reader) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Text returns the document lines joined with "\n".
func (r *Reader) Text() string {
	return strings.Join(r.lines, "\n")
}

// extractHead finds the document title.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.Data == "title" {
				r.title = collapseSpace(getTextContent(c))
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// lineCollector accumulates inline text until a block boundary.
type lineCollector struct {
	lines []string
	cur   strings.Builder
}

func (c *lineCollector) flush() {
	if line := collapseSpace(c.cur.String()); line != "" {
		c.lines = append(c.lines, line)
	}
	c.cur.Reset()
}

func (c *lineCollector) traverse(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		c.cur.WriteString(n.Data)
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}

		switch {
		case n.Data == "br":
			c.flush()
			return

		case n.Data == "pre":
			c.flush()
			for _, line := range strings.Split(getTextContent(n), "\n") {
				line = strings.TrimRight(line, "\r")
				if strings.TrimSpace(line) != "" {
					c.lines = append(c.lines, line)
				}
			}
			return

		case n.Data == "td" || n.Data == "th":
			if c.cur.Len() > 0 {
				c.cur.WriteString(" ")
			}
			c.children(n)
			return

		case isBlockElement(n.Data):
			c.flush()
			c.children(n)
			c.flush()
			return
		}
	}

	c.children(n)
}

func (c *lineCollector) children(n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.traverse(child)
	}
}

// shouldSkipElement returns true for non-content elements.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "head", "svg", "iframe":
		return true
	}
	return false
}

func isBlockElement(tagName string) bool {
	switch tagName {
	case "p", "div", "li", "ul", "ol", "dl", "dt", "dd",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"table", "thead", "tbody", "tfoot", "tr", "caption",
		"blockquote", "article", "section", "main", "header", "footer", "nav", "aside",
		"figure", "figcaption", "hr", "address", "form", "fieldset":
		return true
	}
	return false
}

func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

// getTextContent returns the raw text below n, skipping script/style.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return result.String()
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
}

// collapseSpace trims s and replaces every whitespace run with one space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
