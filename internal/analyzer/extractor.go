package analyzer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

// Fixed query sets for the four extraction passes
var (
	inputQueries = []string{
		`input[type='text']`,
		`input[type='email']`,
		`input[type='password']`,
		`input[type='number']`,
		`input[type='tel']`,
		`input[type='url']`,
		`input[type='search']`,
		`input:not([type])`,
		`textarea`,
	}

	buttonQueries = []string{
		`button`,
		`input[type='submit']`,
		`input[type='button']`,
		`[role='button']`,
	}

	linkQueries = []string{`a[href]`}

	selectQueries = []string{`select`}

	navQueries = []string{`nav a`, `header a`, `.navbar a`, `.menu a`, `.nav a`}
)

// extractor walks a Document and produces the element, form and navigation
// portions of a PageInfo. Extraction never fails the analysis: a query or
// attribute read that errors contributes nothing.
type extractor struct {
	logger *zap.Logger
}

func newExtractor(logger *zap.Logger) *extractor {
	return &extractor{logger: logger}
}

func (e *extractor) elements(doc Document) []domain.PageElement {
	var elements []domain.PageElement
	elements = append(elements, e.collect(doc, inputQueries, domain.KindInput)...)
	elements = append(elements, e.collect(doc, buttonQueries, domain.KindButton)...)
	elements = append(elements, e.collect(doc, linkQueries, domain.KindLink)...)
	elements = append(elements, e.collect(doc, selectQueries, domain.KindSelect)...)
	return elements
}

func (e *extractor) collect(doc Document, queries []string, kind domain.ElementKind) []domain.PageElement {
	var elements []domain.PageElement
	for _, query := range queries {
		nodes, err := doc.Query(query)
		if err != nil {
			e.logger.Debug("element query failed",
				zap.String("selector", query),
				zap.Error(err))
			continue
		}
		for _, node := range nodes {
			if el, ok := e.element(node, kind); ok {
				elements = append(elements, el)
			}
		}
	}
	return elements
}

// element reads one node into a PageElement. Nodes whose tag cannot be read
// are dropped.
func (e *extractor) element(node Node, kind domain.ElementKind) (domain.PageElement, bool) {
	tag, err := node.Tag()
	if err != nil || tag == "" {
		return domain.PageElement{}, false
	}

	id := node.Attr("id")
	name := node.Attr("name")

	return domain.PageElement{
		Selector:    buildSelector(tag, id, name, node.Attr("class")),
		Tag:         tag,
		Kind:        kind,
		Text:        strings.TrimSpace(node.Text()),
		Placeholder: node.Attr("placeholder"),
		Name:        name,
		ID:          id,
		Role:        node.Attr("role"),
		Required:    node.HasAttr("required"),
		Disabled:    node.HasAttr("disabled"),
		Attributes: domain.ElementAttributes{
			Type:      node.Attr("type"),
			MaxLength: node.Attr("maxlength"),
			Pattern:   node.Attr("pattern"),
		},
	}, true
}

// buildSelector picks the most stable selector available:
// id, then name, then tag with the first class, then the bare tag.
func buildSelector(tag, id, name, class string) string {
	if id != "" {
		return "#" + id
	}
	if name != "" {
		return fmt.Sprintf("[name='%s']", name)
	}
	if class != "" {
		if classes := strings.Fields(class); len(classes) > 0 {
			return tag + "." + classes[0]
		}
	}
	return tag
}

func (e *extractor) forms(doc Document) []domain.FormDescriptor {
	nodes, err := doc.Query("form")
	if err != nil {
		e.logger.Debug("form query failed", zap.Error(err))
		return nil
	}

	var forms []domain.FormDescriptor
	for _, node := range nodes {
		form := domain.FormDescriptor{
			ID:     node.Attr("id"),
			Action: node.Attr("action"),
			Method: "GET",
		}
		if method := node.Attr("method"); method != "" {
			form.Method = strings.ToUpper(method)
		}

		fields, err := node.Query("input, textarea, select")
		if err != nil {
			e.logger.Debug("form field query failed", zap.Error(err))
		} else {
			for _, field := range fields {
				input := domain.FormInput{
					Name:     field.Attr("name"),
					Type:     "text",
					Required: field.HasAttr("required"),
				}
				if fieldType := field.Attr("type"); fieldType != "" {
					input.Type = fieldType
				}
				form.Inputs = append(form.Inputs, input)
			}
		}

		forms = append(forms, form)
	}
	return forms
}

func (e *extractor) navigation(doc Document) []domain.NavigationLink {
	var links []domain.NavigationLink
	for _, query := range navQueries {
		nodes, err := doc.Query(query)
		if err != nil {
			e.logger.Debug("navigation query failed",
				zap.String("selector", query),
				zap.Error(err))
			continue
		}
		for _, node := range nodes {
			text := strings.TrimSpace(node.Text())
			href := node.Attr("href")
			if text == "" || href == "" {
				continue
			}
			links = append(links, domain.NavigationLink{Text: text, Href: href})
		}
	}
	return links
}
