package analyzer

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// pageDocument adapts a live Playwright page to the Document interface
type pageDocument struct {
	page playwright.Page
}

func newPageDocument(page playwright.Page) *pageDocument {
	return &pageDocument{page: page}
}

func (d *pageDocument) Title() (string, error) {
	return d.page.Title()
}

func (d *pageDocument) Count(selector string) (int, error) {
	return d.page.Locator(selector).Count()
}

func (d *pageDocument) Query(selector string) ([]Node, error) {
	locators, err := d.page.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	return wrapLocators(locators), nil
}

// locatorNode adapts a Playwright locator to the Node interface. Attribute
// and text reads never fail hard: an unreadable value reads as absent.
type locatorNode struct {
	loc playwright.Locator
}

func wrapLocators(locators []playwright.Locator) []Node {
	nodes := make([]Node, 0, len(locators))
	for _, loc := range locators {
		nodes = append(nodes, &locatorNode{loc: loc})
	}
	return nodes
}

func (n *locatorNode) Tag() (string, error) {
	result, err := n.loc.Evaluate("el => el.tagName.toLowerCase()", nil)
	if err != nil {
		return "", err
	}
	tag, ok := result.(string)
	if !ok || tag == "" {
		return "", fmt.Errorf("element has no tag name")
	}
	return tag, nil
}

func (n *locatorNode) Attr(name string) string {
	value, err := n.loc.GetAttribute(name)
	if err != nil {
		return ""
	}
	return value
}

func (n *locatorNode) HasAttr(name string) bool {
	result, err := n.loc.Evaluate(fmt.Sprintf("el => el.hasAttribute(%q)", name), nil)
	if err != nil {
		return false
	}
	present, ok := result.(bool)
	return ok && present
}

func (n *locatorNode) Text() string {
	text, err := n.loc.TextContent()
	if err != nil {
		return ""
	}
	return text
}

func (n *locatorNode) Query(selector string) ([]Node, error) {
	locators, err := n.loc.Locator(selector).All()
	if err != nil {
		return nil, err
	}
	return wrapLocators(locators), nil
}
