package analyzer

import "errors"

// fakeDocument is a canned Document for tests. Queries and counts are keyed
// by the exact selector string; selectors in failCounts or failQueries
// return errors.
type fakeDocument struct {
	title       string
	titleErr    error
	nodes       map[string][]Node
	counts      map[string]int
	failQueries map[string]bool
	failCounts  map[string]bool
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{
		nodes:       map[string][]Node{},
		counts:      map[string]int{},
		failQueries: map[string]bool{},
		failCounts:  map[string]bool{},
	}
}

func (d *fakeDocument) Title() (string, error) {
	return d.title, d.titleErr
}

func (d *fakeDocument) Query(selector string) ([]Node, error) {
	if d.failQueries[selector] {
		return nil, errors.New("query evaluation failed")
	}
	return d.nodes[selector], nil
}

func (d *fakeDocument) Count(selector string) (int, error) {
	if d.failCounts[selector] {
		return 0, errors.New("count evaluation failed")
	}
	if n, ok := d.counts[selector]; ok {
		return n, nil
	}
	return len(d.nodes[selector]), nil
}

// fakeNode is a canned Node. A node with tagErr set simulates a detached or
// unreadable element.
type fakeNode struct {
	tag      string
	tagErr   error
	attrs    map[string]string
	present  map[string]bool
	text     string
	children map[string][]Node
}

func (n *fakeNode) Tag() (string, error) {
	if n.tagErr != nil {
		return "", n.tagErr
	}
	return n.tag, nil
}

func (n *fakeNode) Attr(name string) string {
	return n.attrs[name]
}

func (n *fakeNode) HasAttr(name string) bool {
	if n.present[name] {
		return true
	}
	_, ok := n.attrs[name]
	return ok
}

func (n *fakeNode) Text() string {
	return n.text
}

func (n *fakeNode) Query(selector string) ([]Node, error) {
	return n.children[selector], nil
}
