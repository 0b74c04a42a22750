package analyzer

// Document is the read-only view of a loaded page that the extraction and
// classification passes run against. The production implementation is backed
// by a live Playwright page; tests supply fixtures.
type Document interface {
	// Title returns the document title
	Title() (string, error)

	// Query returns all nodes matching the CSS selector
	Query(selector string) ([]Node, error)

	// Count returns the number of nodes matching the CSS selector
	Count(selector string) (int, error)
}

// Node is one DOM element reachable from a Document
type Node interface {
	// Tag returns the lowercase tag name
	Tag() (string, error)

	// Attr returns the attribute value, or "" when absent or unreadable
	Attr(name string) string

	// HasAttr reports attribute presence regardless of value
	HasAttr(name string) bool

	// Text returns the node's text content, or "" when unreadable
	Text() string

	// Query returns descendant nodes matching the CSS selector
	Query(selector string) ([]Node, error)
}

// tryCount counts matches for a selector, treating any evaluation failure as
// zero matches.
func tryCount(doc Document, selector string) int {
	n, err := doc.Count(selector)
	if err != nil {
		return 0
	}
	return n
}
