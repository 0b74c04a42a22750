package generator

import (
	"bytes"
	"fmt"

	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/naming"
)

// PageObjectGenerator renders the Python page object for an analyzed page.
// The generated class follows the page-object pattern consumed by the test
// suite: one selector constant per element, fill/get accessors for inputs,
// click methods for buttons and select methods for dropdowns.
type PageObjectGenerator struct{}

// NewPageObjectGenerator creates a page object generator
func NewPageObjectGenerator() *PageObjectGenerator {
	return &PageObjectGenerator{}
}

// Generate renders the complete page object module
func (g *PageObjectGenerator) Generate(info *domain.PageInfo) string {
	var b bytes.Buffer

	pageName := naming.PageNameFromURL(info.URL)

	b.WriteString(`"""` + "\n")
	fmt.Fprintf(&b, "%s page object.\n", pageName)
	b.WriteString("\n")
	fmt.Fprintf(&b, "URL: %s\n", info.URL)
	fmt.Fprintf(&b, "Type: %s\n", info.PageType)
	b.WriteString(`"""` + "\n\n")
	b.WriteString("from core.base_page import BasePage\n\n\n")

	b.WriteString(g.Class(info))

	return b.String()
}

// Class renders the class definition only; the test plan embeds it as the
// page-object skeleton.
func (g *PageObjectGenerator) Class(info *domain.PageInfo) string {
	var b bytes.Buffer

	pageName := naming.PageNameFromURL(info.URL)
	className := naming.ToClassName(pageName) + "Page"

	fmt.Fprintf(&b, "class %s(BasePage):\n", className)
	fmt.Fprintf(&b, "    \"\"\"%s\"\"\"\n\n", naming.PageDescription(info.PageType))

	g.writeSelectors(&b, info)
	g.writeNavigation(&b, info)
	g.writeActions(&b, info)
	g.writeVerification(&b)

	return b.String()
}

func (g *PageObjectGenerator) writeSelectors(b *bytes.Buffer, info *domain.PageInfo) {
	b.WriteString("    # Selectors\n")
	if len(info.Elements) == 0 {
		b.WriteString("    # (no interactive elements found)\n")
	}
	for _, el := range info.Elements {
		fmt.Fprintf(b, "    %s = %q  # %s\n",
			naming.ElementConstantName(el),
			el.Selector,
			naming.ElementComment(el))
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "    URL = %q\n", naming.URLPath(info.URL))
	fmt.Fprintf(b, "    PAGE_LOADED_INDICATOR = %q\n\n", pageLoadedIndicator(info))
}

func (g *PageObjectGenerator) writeNavigation(b *bytes.Buffer, info *domain.PageInfo) {
	b.WriteString("    def navigate(self) -> None:\n")
	b.WriteString("        \"\"\"Open the page and wait for it to load.\"\"\"\n")
	b.WriteString("        self.goto(self.URL)\n")
	b.WriteString("        self.wait_for_page_load()\n\n")

	b.WriteString("    def is_loaded(self) -> bool:\n")
	b.WriteString("        \"\"\"Check whether the page's load indicator is visible.\"\"\"\n")
	b.WriteString("        try:\n")
	b.WriteString("            return self.is_visible(self.PAGE_LOADED_INDICATOR, timeout=5000)\n")
	b.WriteString("        except Exception:\n")
	b.WriteString("            return False\n\n")
}

func (g *PageObjectGenerator) writeActions(b *bytes.Buffer, info *domain.PageInfo) {
	wrote := false

	for _, el := range info.Inputs() {
		name := naming.ElementName(el)
		constant := naming.ElementConstantName(el)

		fmt.Fprintf(b, "    def fill_%s(self, value: str) -> None:\n", name)
		fmt.Fprintf(b, "        \"\"\"Fill the %s.\"\"\"\n", naming.ElementDescription(el))
		fmt.Fprintf(b, "        self.fill(self.%s, value)\n\n", constant)

		fmt.Fprintf(b, "    def get_%s_value(self) -> str:\n", name)
		fmt.Fprintf(b, "        return self.get_input_value(self.%s)\n\n", constant)
		wrote = true
	}

	for _, el := range info.Buttons() {
		fmt.Fprintf(b, "    def click_%s(self) -> None:\n", naming.ElementName(el))
		fmt.Fprintf(b, "        \"\"\"Click the %s.\"\"\"\n", naming.ElementDescription(el))
		fmt.Fprintf(b, "        self.click(self.%s)\n\n", naming.ElementConstantName(el))
		wrote = true
	}

	for _, el := range info.Selects() {
		fmt.Fprintf(b, "    def select_%s(self, value: str) -> None:\n", naming.ElementName(el))
		fmt.Fprintf(b, "        \"\"\"Pick an option in the %s.\"\"\"\n", naming.ElementDescription(el))
		fmt.Fprintf(b, "        self.select_option(self.%s, value)\n\n", naming.ElementConstantName(el))
		wrote = true
	}

	if !wrote {
		b.WriteString("    # No fillable or clickable elements were found on this page\n\n")
	}
}

func (g *PageObjectGenerator) writeVerification(b *bytes.Buffer) {
	b.WriteString("    def get_validation_errors(self) -> list:\n")
	b.WriteString("        \"\"\"Collect visible validation error messages.\"\"\"\n")
	b.WriteString("        return self.utils.get_validation_errors()\n\n")

	b.WriteString("    def has_validation_error(self) -> bool:\n")
	b.WriteString("        return self.utils.has_validation_error()\n")
}

// pageLoadedIndicator picks the selector used by is_loaded: the first
// extracted element, or the document body when the page exposed nothing
func pageLoadedIndicator(info *domain.PageInfo) string {
	if len(info.Elements) > 0 {
		return info.Elements[0].Selector
	}
	return "body"
}
