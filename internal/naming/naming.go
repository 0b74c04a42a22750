// Package naming derives stable, deterministic identifiers from page URLs
// and extracted elements. Every function is pure: same input, same output,
// and re-applying a normalizer to its own output is a no-op.
package naming

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

// ToSnakeCase converts an arbitrary string to snake_case. Non-alphanumeric
// runs collapse to a single underscore and camelCase boundaries split.
func ToSnakeCase(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	prevLowerOrDigit := false
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			if unicode.IsUpper(r) {
				if prevLowerOrDigit && b.Len() > 0 {
					b.WriteByte('_')
				}
				r = unicode.ToLower(r)
				prevLowerOrDigit = false
			} else {
				prevLowerOrDigit = true
			}
			b.WriteRune(r)
		default:
			pendingSep = true
			prevLowerOrDigit = false
		}
	}
	return b.String()
}

// ToClassName converts an arbitrary string to PascalCase
func ToClassName(s string) string {
	parts := strings.Split(ToSnakeCase(s), "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// PageNameFromURL derives a human-readable page name from the last path
// segment, e.g. "https://x.test/user-profile" -> "User Profile". The site
// root maps to "Home".
func PageNameFromURL(rawURL string) string {
	segment := lastPathSegment(rawURL)
	if segment == "" {
		return "Home"
	}

	words := strings.Split(ToSnakeCase(segment), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}

// FileNameFromURL derives the artifact file stem, e.g. "user_profile"
func FileNameFromURL(rawURL string) string {
	segment := lastPathSegment(rawURL)
	if segment == "" {
		return "home"
	}
	return ToSnakeCase(segment)
}

// TCPrefixFromURL derives the test case ID prefix, e.g. "USER_PROFILE"
func TCPrefixFromURL(rawURL string) string {
	return strings.ToUpper(FileNameFromURL(rawURL))
}

// URLPath returns the path component of the URL, defaulting to "/"
func URLPath(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Path == "" {
		return "/"
	}
	return parsed.Path
}

func lastPathSegment(rawURL string) string {
	path := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		path = parsed.Path
	}
	path = strings.Trim(path, "/")
	if path == "" {
		return ""
	}
	segments := strings.Split(path, "/")
	segment := segments[len(segments)-1]
	if i := strings.LastIndex(segment, "."); i > 0 {
		segment = segment[:i]
	}
	return segment
}

// ElementName derives the snake_case name used for generated methods,
// preferring name, then id, then visible text, then placeholder, falling
// back to the element kind.
func ElementName(el domain.PageElement) string {
	for _, candidate := range []string{el.Name, el.ID, el.Text, el.Placeholder} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if name := ToSnakeCase(candidate); name != "" {
			return name
		}
	}
	return string(el.Kind)
}

// ElementConstantName derives the UPPER_SNAKE selector constant name,
// disambiguating by tag and attributes when name and id are both absent
func ElementConstantName(el domain.PageElement) string {
	base := el.Name
	if base == "" {
		base = el.ID
	}
	if base == "" {
		switch {
		case el.Attributes.Type != "":
			base = el.Tag + " " + el.Attributes.Type
		case strings.TrimSpace(el.Text) != "":
			base = el.Tag + " " + el.Text
		default:
			base = el.Tag + " " + string(el.Kind)
		}
	}
	name := strings.ToUpper(ToSnakeCase(base))
	if name == "" {
		name = strings.ToUpper(string(el.Kind))
	}
	return name
}

var kindDescriptions = map[domain.ElementKind]string{
	domain.KindInput:  "input field",
	domain.KindButton: "button",
	domain.KindLink:   "link",
	domain.KindSelect: "dropdown",
}

// ElementDescription renders a short human description of an element
func ElementDescription(el domain.PageElement) string {
	desc, ok := kindDescriptions[el.Kind]
	if !ok {
		desc = "element"
	}
	label := strings.TrimSpace(el.Text)
	if label == "" {
		label = strings.TrimSpace(el.Placeholder)
	}
	if label == "" {
		return desc
	}
	return desc + ": " + label
}

// ElementComment renders the trailing comment for a generated selector
// constant
func ElementComment(el domain.PageElement) string {
	return ElementDescription(el)
}

var pageDescriptions = map[domain.PageType]string{
	domain.PageTypeLogin:     "Authentication page where users sign in with their credentials.",
	domain.PageTypeRegister:  "Registration page where new users create an account.",
	domain.PageTypeForm:      "Data entry page with one or more editable fields.",
	domain.PageTypeList:      "Listing page presenting a collection of records, typically paginated.",
	domain.PageTypeDetail:    "Detail page presenting a single record.",
	domain.PageTypeDashboard: "Overview page aggregating widgets, charts and statistics.",
	domain.PageTypeSettings:  "Settings page where users review and persist preferences.",
}

// PageDescription returns the fixed one-line description for a page type
func PageDescription(t domain.PageType) string {
	if desc, ok := pageDescriptions[t]; ok {
		return desc
	}
	return pageDescriptions[domain.PageTypeForm]
}

var testDimensions = map[domain.PageType][]string{
	domain.PageTypeLogin:     {"functional", "security", "boundary", "exception", "ui"},
	domain.PageTypeRegister:  {"functional", "validation", "boundary", "exception", "ui"},
	domain.PageTypeForm:      {"functional", "validation", "boundary", "exception", "data"},
	domain.PageTypeList:      {"functional", "pagination", "filter", "performance", "ui"},
	domain.PageTypeDetail:    {"functional", "data", "navigation", "ui"},
	domain.PageTypeDashboard: {"functional", "data", "performance", "ui"},
	domain.PageTypeSettings:  {"functional", "validation", "persistence", "ui"},
}

// TestDimensions returns the test dimensions exercised for a page type
func TestDimensions(t domain.PageType) []string {
	if dims, ok := testDimensions[t]; ok {
		return dims
	}
	return []string{"functional"}
}

// RequiresAuth reports whether pages of this type normally sit behind a login
func RequiresAuth(t domain.PageType) bool {
	switch t {
	case domain.PageTypeDashboard, domain.PageTypeSettings, domain.PageTypeDetail:
		return true
	}
	return false
}
