package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/naming"
)

// planCase is one rendered test case in the plan
type planCase struct {
	id          string
	title       string
	priority    string
	dimension   string
	description string
	steps       []string
	expected    []string
}

// TestPlanGenerator renders the markdown test plan. Section order is fixed:
// header, overview, element map, test cases, test data, page object
// skeleton, implementation notes.
type TestPlanGenerator struct {
	data       *TestDataGenerator
	pageObject *PageObjectGenerator
	now        func() time.Time
}

// NewTestPlanGenerator creates a test plan generator
func NewTestPlanGenerator(data *TestDataGenerator, pageObject *PageObjectGenerator, now func() time.Time) *TestPlanGenerator {
	if now == nil {
		now = time.Now
	}
	return &TestPlanGenerator{data: data, pageObject: pageObject, now: now}
}

// Generate renders the complete test plan
func (g *TestPlanGenerator) Generate(info *domain.PageInfo) string {
	sections := []string{
		g.header(info),
		g.overview(info),
		g.elementMap(info),
		g.testCases(info),
		g.testDataSection(info),
		g.pageObjectSkeleton(info),
		g.notes(info),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func (g *TestPlanGenerator) header(info *domain.PageInfo) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s Test Plan\n\n", naming.PageNameFromURL(info.URL))
	fmt.Fprintf(&b, "> Generated: %s\n", g.now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "> Type: %s\n", info.PageType)
	fmt.Fprintf(&b, "> URL: %s", info.URL)
	return b.String()
}

func (g *TestPlanGenerator) overview(info *domain.PageInfo) string {
	var b bytes.Buffer
	b.WriteString("## 1. Overview\n\n")
	b.WriteString("| Item | Value |\n")
	b.WriteString("|------|-------|\n")
	fmt.Fprintf(&b, "| Page Name | %s |\n", naming.PageNameFromURL(info.URL))
	fmt.Fprintf(&b, "| URL | %s |\n", info.URL)
	fmt.Fprintf(&b, "| Title | %s |\n", info.Title)
	fmt.Fprintf(&b, "| Page Type | %s |\n", info.PageType)
	fmt.Fprintf(&b, "| Test Dimensions | %s |\n", strings.Join(naming.TestDimensions(info.PageType), ", "))
	fmt.Fprintf(&b, "| Interactive Elements | %d |\n", len(info.Elements))
	fmt.Fprintf(&b, "| Forms | %d |\n\n", len(info.Forms))
	b.WriteString("### 1.1 Page Description\n\n")
	fmt.Fprintf(&b, "> %s", naming.PageDescription(info.PageType))
	return b.String()
}

func (g *TestPlanGenerator) elementMap(info *domain.PageInfo) string {
	var b bytes.Buffer
	b.WriteString("## 2. Element Map\n\n")

	if len(info.Elements) == 0 {
		b.WriteString("No interactive elements were found on this page.")
		return b.String()
	}

	b.WriteString("| Name | Kind | Selector | Description |\n")
	b.WriteString("|------|------|----------|-------------|\n")
	for _, el := range info.Elements {
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n",
			naming.ElementName(el), el.Kind, el.Selector, naming.ElementDescription(el))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (g *TestPlanGenerator) testCases(info *domain.PageInfo) string {
	prefix := naming.TCPrefixFromURL(info.URL)

	var b bytes.Buffer
	b.WriteString("## 3. Test Cases\n\n")

	b.WriteString("### 3.1 P0 - Critical\n\n")
	writeCases(&b, p0Cases(info, prefix))

	b.WriteString("### 3.2 P1 - Field Validation\n\n")
	p1 := p1Cases(info, prefix)
	if len(p1) == 0 {
		b.WriteString("No input fields found; nothing to validate at this tier.\n\n")
	} else {
		writeCases(&b, p1)
	}

	b.WriteString("### 3.3 P2 - Experience\n\n")
	writeCases(&b, p2Cases(info, prefix))

	return strings.TrimRight(b.String(), "\n")
}

func writeCases(b *bytes.Buffer, cases []planCase) {
	for _, c := range cases {
		fmt.Fprintf(b, "#### %s: %s\n\n", c.id, c.title)
		fmt.Fprintf(b, "- **Priority**: %s\n", c.priority)
		fmt.Fprintf(b, "- **Dimension**: %s\n\n", c.dimension)
		if c.description != "" {
			fmt.Fprintf(b, "%s\n\n", c.description)
		}
		b.WriteString("Steps:\n\n")
		for i, step := range c.steps {
			fmt.Fprintf(b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\nExpected:\n\n")
		for _, exp := range c.expected {
			fmt.Fprintf(b, "- [ ] %s\n", exp)
		}
		b.WriteString("\n")
	}
}

// p0Cases builds the critical tier: a page-load case for every page, plus
// the type-specific flows for login, form and list pages
func p0Cases(info *domain.PageInfo, prefix string) []planCase {
	navigate := fmt.Sprintf("Navigate to `%s`", info.URL)

	cases := []planCase{{
		id:          fmt.Sprintf("TC-%s-001", prefix),
		title:       "Page loads successfully",
		priority:    "P0",
		dimension:   "functional",
		description: "The page must load and render its core elements before any other case is meaningful.",
		steps: []string{
			navigate,
			"Wait for the page to finish loading",
		},
		expected: []string{
			"Page responds without errors",
			"Core elements are visible",
		},
	}}

	switch info.PageType {
	case domain.PageTypeLogin:
		cases = append(cases,
			planCase{
				id:        fmt.Sprintf("TC-%s-002", prefix),
				title:     "Successful login with valid credentials",
				priority:  "P0",
				dimension: "functional",
				steps: []string{
					navigate,
					"Fill every credential field with valid data",
					"Submit the login form",
				},
				expected: []string{
					"No validation errors are shown",
					"The browser leaves the login page",
				},
			},
			planCase{
				id:        fmt.Sprintf("TC-%s-003", prefix),
				title:     "Login rejected with invalid credentials",
				priority:  "P0",
				dimension: "security",
				steps: []string{
					navigate,
					"Fill the credential fields with invalid data",
					"Submit the login form",
				},
				expected: []string{
					"A validation or authentication error is shown",
					"The browser stays on the login page",
				},
			},
		)
	case domain.PageTypeForm:
		cases = append(cases,
			planCase{
				id:        fmt.Sprintf("TC-%s-002", prefix),
				title:     "Form submits with valid data",
				priority:  "P0",
				dimension: "functional",
				steps: []string{
					navigate,
					"Fill every field with valid data",
					"Submit the form",
				},
				expected: []string{
					"No validation errors are shown",
					"Submission is acknowledged",
				},
			},
			planCase{
				id:        fmt.Sprintf("TC-%s-003", prefix),
				title:     "Required fields rejected when empty",
				priority:  "P0",
				dimension: "validation",
				steps: []string{
					navigate,
					"Leave every field empty",
					"Submit the form",
				},
				expected: []string{
					"Validation errors are shown for required fields",
					"The form is not submitted",
				},
			},
		)
	case domain.PageTypeList:
		cases = append(cases,
			planCase{
				id:        fmt.Sprintf("TC-%s-002", prefix),
				title:     "List data loads",
				priority:  "P0",
				dimension: "functional",
				steps: []string{
					navigate,
					"Wait for list content to render",
				},
				expected: []string{
					"At least one row or item is visible",
					"No empty-state error is shown",
				},
			},
			planCase{
				id:        fmt.Sprintf("TC-%s-003", prefix),
				title:     "Pagination navigates between pages",
				priority:  "P0",
				dimension: "pagination",
				steps: []string{
					navigate,
					"Move to the next page of results",
				},
				expected: []string{
					"The visible items change",
					"The pagination control reflects the current page",
				},
			},
		)
	}

	return cases
}

// p1Cases builds one field-validation case per input element
func p1Cases(info *domain.PageInfo, prefix string) []planCase {
	var cases []planCase
	for i, el := range info.Inputs() {
		name := naming.ElementName(el)
		cases = append(cases, planCase{
			id:        fmt.Sprintf("TC-%s-1%02d", prefix, i+1),
			title:     fmt.Sprintf("Field accepts input: %s", name),
			priority:  "P1",
			dimension: "validation",
			steps: []string{
				fmt.Sprintf("Navigate to `%s`", info.URL),
				fmt.Sprintf("Fill `%s` with %q", el.Selector, validValue(el)),
				"Read the field value back",
			},
			expected: []string{
				"The field holds the entered value",
			},
		})
	}
	return cases
}

// p2Cases builds the fixed experience tier: styling and keyboard navigation
func p2Cases(info *domain.PageInfo, prefix string) []planCase {
	navigate := fmt.Sprintf("Navigate to `%s`", info.URL)
	return []planCase{
		{
			id:        fmt.Sprintf("TC-%s-201", prefix),
			title:     "UI styling and layout",
			priority:  "P2",
			dimension: "rendering",
			steps: []string{
				navigate,
				"Capture a full-page screenshot",
			},
			expected: []string{
				"Layout matches the design baseline",
				"No overlapping or clipped elements",
			},
		},
		{
			id:        fmt.Sprintf("TC-%s-202", prefix),
			title:     "Keyboard navigation",
			priority:  "P2",
			dimension: "accessibility",
			steps: []string{
				navigate,
				"Move focus through the page with the Tab key",
			},
			expected: []string{
				"Every interactive element is reachable",
				"Focus order follows the visual order",
			},
		},
	}
}

func (g *TestPlanGenerator) testDataSection(info *domain.PageInfo) string {
	data := g.data.Generate(info)

	var b bytes.Buffer
	b.WriteString("## 4. Test Data\n\n")
	writeDataBlock(&b, "4.1 Valid", data.Valid)
	writeDataBlock(&b, "4.2 Invalid", data.Invalid)
	writeDataBlock(&b, "4.3 Boundary", data.Boundary)
	return strings.TrimRight(b.String(), "\n")
}

func writeDataBlock(b *bytes.Buffer, heading string, data any) {
	fmt.Fprintf(b, "### %s\n\n", heading)
	b.WriteString("```json\n")
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		// Maps of strings cannot fail to marshal; keep the plan well formed
		out = []byte("{}")
	}
	b.Write(out)
	b.WriteString("\n```\n\n")
}

func (g *TestPlanGenerator) pageObjectSkeleton(info *domain.PageInfo) string {
	var b bytes.Buffer
	b.WriteString("## 5. Page Object\n\n")
	b.WriteString("```python\n")
	b.WriteString(g.pageObject.Class(info))
	b.WriteString("```")
	return b.String()
}

func (g *TestPlanGenerator) notes(info *domain.PageInfo) string {
	name := naming.FileNameFromURL(info.URL)

	var b bytes.Buffer
	b.WriteString("## 6. Implementation Notes\n\n")
	b.WriteString("| Artifact | Location |\n")
	b.WriteString("|----------|----------|\n")
	fmt.Fprintf(&b, "| Page object | `pages/%s_page.py` |\n", name)
	fmt.Fprintf(&b, "| Test suite | `tests/test_%s.py` |\n", name)
	fmt.Fprintf(&b, "| Test data | `test-data/%s_data.json` |\n\n", name)

	requiresAuth := "no"
	if naming.RequiresAuth(info.PageType) {
		requiresAuth = "yes"
	}
	fmt.Fprintf(&b, "- Requires authenticated session: %s\n", requiresAuth)
	fmt.Fprintf(&b, "- Run: `pytest tests/test_%s.py -v`", name)
	return b.String()
}
