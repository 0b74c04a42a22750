package domain

import "encoding/json"

// PageType categorizes an analyzed page by its dominant interaction pattern
type PageType string

const (
	PageTypeLogin     PageType = "LOGIN"
	PageTypeRegister  PageType = "REGISTER"
	PageTypeForm      PageType = "FORM"
	PageTypeList      PageType = "LIST"
	PageTypeDetail    PageType = "DETAIL"
	PageTypeDashboard PageType = "DASHBOARD"
	PageTypeSettings  PageType = "SETTINGS"
)

// PageTypes lists every page type in rule order. Classification ties resolve
// to the earliest entry.
var PageTypes = []PageType{
	PageTypeLogin,
	PageTypeRegister,
	PageTypeForm,
	PageTypeList,
	PageTypeDetail,
	PageTypeDashboard,
	PageTypeSettings,
}

// IsValid checks if the page type is a known value
func (t PageType) IsValid() bool {
	for _, known := range PageTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ElementKind identifies which extraction pass produced an element
type ElementKind string

const (
	KindInput  ElementKind = "input"
	KindButton ElementKind = "button"
	KindLink   ElementKind = "link"
	KindSelect ElementKind = "select"
)

// IsValid checks if the element kind is a known value
func (k ElementKind) IsValid() bool {
	switch k {
	case KindInput, KindButton, KindLink, KindSelect:
		return true
	}
	return false
}

// ElementAttributes captures the HTML attributes the generators consume
type ElementAttributes struct {
	Type      string `json:"type,omitempty"`
	MaxLength string `json:"maxlength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// PageElement is one interactive element found on a page
type PageElement struct {
	Selector    string            `json:"selector"`
	Tag         string            `json:"tag"`
	Kind        ElementKind       `json:"kind"`
	Text        string            `json:"text,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Name        string            `json:"name,omitempty"`
	ID          string            `json:"id,omitempty"`
	Role        string            `json:"role,omitempty"`
	Required    bool              `json:"required"`
	Disabled    bool              `json:"disabled"`
	Attributes  ElementAttributes `json:"attributes"`
}

// FormInput is one field belonging to a form
type FormInput struct {
	Name     string `json:"name,omitempty"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// FormDescriptor summarizes one form element on the page
type FormDescriptor struct {
	ID     string      `json:"id,omitempty"`
	Action string      `json:"action,omitempty"`
	Method string      `json:"method"`
	Inputs []FormInput `json:"inputs"`
}

// NavigationLink is a link found inside a navigation region
type NavigationLink struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PageInfo is the complete result of analyzing one page
type PageInfo struct {
	URL        string           `json:"url"`
	Title      string           `json:"title"`
	PageType   PageType         `json:"page_type"`
	Elements   []PageElement    `json:"elements"`
	Forms      []FormDescriptor `json:"forms"`
	Navigation []NavigationLink `json:"navigation"`
}

// Inputs returns the elements produced by the input extraction pass, in
// discovery order
func (p *PageInfo) Inputs() []PageElement {
	return p.elementsOfKind(KindInput)
}

// Buttons returns the elements produced by the button extraction pass, in
// discovery order
func (p *PageInfo) Buttons() []PageElement {
	return p.elementsOfKind(KindButton)
}

// Selects returns the elements produced by the select extraction pass
func (p *PageInfo) Selects() []PageElement {
	return p.elementsOfKind(KindSelect)
}

func (p *PageInfo) elementsOfKind(kind ElementKind) []PageElement {
	var out []PageElement
	for _, el := range p.Elements {
		if el.Kind == kind {
			out = append(out, el)
		}
	}
	return out
}

// ToJSON serializes the page info as indented JSON
func (p *PageInfo) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}
