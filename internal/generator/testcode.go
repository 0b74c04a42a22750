package generator

import (
	"bytes"
	"fmt"

	"github.com/scaffoldhq/scaffold/internal/domain"
	"github.com/scaffoldhq/scaffold/internal/naming"
)

// TestCaseGenerator renders the pytest suite that drives the generated page
// object. The tier structure mirrors the test plan: one P0 load test plus
// type-specific P0 flows, one P1 test per input, and two fixed P2 tests.
type TestCaseGenerator struct{}

// NewTestCaseGenerator creates a test case generator
func NewTestCaseGenerator() *TestCaseGenerator {
	return &TestCaseGenerator{}
}

// Generate renders the complete test module
func (g *TestCaseGenerator) Generate(info *domain.PageInfo) string {
	var b bytes.Buffer

	pageName := naming.PageNameFromURL(info.URL)
	fileName := naming.FileNameFromURL(info.URL)
	className := naming.ToClassName(pageName)
	pageVar := fileName + "_page"
	prefix := naming.TCPrefixFromURL(info.URL)

	b.WriteString(`"""` + "\n")
	fmt.Fprintf(&b, "%s test suite.\n", pageName)
	b.WriteString("\n")
	b.WriteString("Run:\n")
	fmt.Fprintf(&b, "    pytest tests/test_%s.py -v\n", fileName)
	fmt.Fprintf(&b, "    pytest tests/test_%s.py -v -m P0\n", fileName)
	b.WriteString(`"""` + "\n\n")
	b.WriteString("import pytest\n\n")
	fmt.Fprintf(&b, "from pages.%s_page import %sPage\n\n\n", fileName, className)

	fmt.Fprintf(&b, "class Test%s:\n", className)
	b.WriteString("    @pytest.fixture(autouse=True)\n")
	b.WriteString("    def setup(self, page):\n")
	b.WriteString("        self.page = page\n")
	fmt.Fprintf(&b, "        self.%s = %sPage(page)\n\n", pageVar, className)

	g.writeP0Tests(&b, info, pageVar, prefix)
	g.writeP1Tests(&b, info, pageVar, prefix)
	g.writeP2Tests(&b, pageVar, prefix)

	return b.String()
}

func (g *TestCaseGenerator) writeP0Tests(b *bytes.Buffer, info *domain.PageInfo, pageVar, prefix string) {
	b.WriteString("    # P0 - critical\n\n")
	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_page_load(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-001: page loads and core elements render.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	fmt.Fprintf(b, "        assert self.%s.is_loaded(), \"page failed to load\"\n\n", pageVar)

	switch info.PageType {
	case domain.PageTypeLogin:
		g.writeLoginFlow(b, info, pageVar, prefix)
	case domain.PageTypeForm:
		g.writeFormFlow(b, info, pageVar, prefix)
	case domain.PageTypeList:
		g.writeListFlow(b, pageVar, prefix)
	}
}

func (g *TestCaseGenerator) writeLoginFlow(b *bytes.Buffer, info *domain.PageInfo, pageVar, prefix string) {
	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_successful_login(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-002: login succeeds with valid credentials.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	writeFillCalls(b, info, pageVar, validValue)
	writeSubmitCall(b, info, pageVar)
	fmt.Fprintf(b, "        assert not self.%s.has_validation_error(), \"unexpected validation error\"\n\n", pageVar)

	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_invalid_login_rejected(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-003: login is rejected with invalid credentials.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	writeFillCalls(b, info, pageVar, invalidValue)
	writeSubmitCall(b, info, pageVar)
	fmt.Fprintf(b, "        assert self.%s.has_validation_error(), \"invalid login was not rejected\"\n\n", pageVar)
}

func (g *TestCaseGenerator) writeFormFlow(b *bytes.Buffer, info *domain.PageInfo, pageVar, prefix string) {
	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_submit_with_valid_data(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-002: form submits with valid data.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	writeFillCalls(b, info, pageVar, validValue)
	writeSubmitCall(b, info, pageVar)
	fmt.Fprintf(b, "        assert not self.%s.has_validation_error(), \"unexpected validation error\"\n\n", pageVar)

	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_required_fields_validated(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-003: empty submit triggers required-field validation.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	writeSubmitCall(b, info, pageVar)
	fmt.Fprintf(b, "        assert self.%s.has_validation_error(), \"missing required-field validation\"\n\n", pageVar)
}

func (g *TestCaseGenerator) writeListFlow(b *bytes.Buffer, pageVar, prefix string) {
	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_list_data_loads(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-002: list content renders after load.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	fmt.Fprintf(b, "        assert self.%s.is_loaded(), \"list did not render\"\n\n", pageVar)

	b.WriteString("    @pytest.mark.P0\n")
	b.WriteString("    def test_p0_pagination(self):\n")
	fmt.Fprintf(b, "        \"\"\"%s-003: pagination moves between result pages.\"\"\"\n", "TC-"+prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	b.WriteString("        self.page.click(\".pagination >> text=2\")\n")
	fmt.Fprintf(b, "        assert self.%s.is_loaded(), \"second page did not render\"\n\n", pageVar)
}

func (g *TestCaseGenerator) writeP1Tests(b *bytes.Buffer, info *domain.PageInfo, pageVar, prefix string) {
	inputs := info.Inputs()
	if len(inputs) == 0 {
		return
	}

	b.WriteString("    # P1 - field validation\n\n")
	for i, el := range inputs {
		name := naming.ElementName(el)
		value := validValue(el)

		b.WriteString("    @pytest.mark.P1\n")
		fmt.Fprintf(b, "    def test_p1_%s_accepts_input(self):\n", name)
		fmt.Fprintf(b, "        \"\"\"TC-%s-1%02d: %s holds an entered value.\"\"\"\n", prefix, i+1, name)
		fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
		fmt.Fprintf(b, "        self.%s.fill_%s(%q)\n", pageVar, name, value)
		fmt.Fprintf(b, "        assert self.%s.get_%s_value() == %q\n\n", pageVar, name, value)
	}
}

func (g *TestCaseGenerator) writeP2Tests(b *bytes.Buffer, pageVar, prefix string) {
	b.WriteString("    # P2 - experience\n\n")

	b.WriteString("    @pytest.mark.P2\n")
	b.WriteString("    def test_p2_ui_styling(self):\n")
	fmt.Fprintf(b, "        \"\"\"TC-%s-201: layout renders without visual defects.\"\"\"\n", prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	b.WriteString("        self.page.screenshot(full_page=True)\n\n")

	b.WriteString("    @pytest.mark.P2\n")
	b.WriteString("    def test_p2_keyboard_navigation(self):\n")
	fmt.Fprintf(b, "        \"\"\"TC-%s-202: interactive elements are reachable by keyboard.\"\"\"\n", prefix)
	fmt.Fprintf(b, "        self.%s.navigate()\n", pageVar)
	b.WriteString("        self.page.keyboard.press(\"Tab\")\n")
	b.WriteString("        assert self.page.evaluate(\"document.activeElement !== document.body\")\n")
}

// writeFillCalls fills every input through its page-object method
func writeFillCalls(b *bytes.Buffer, info *domain.PageInfo, pageVar string, value func(domain.PageElement) string) {
	for _, el := range info.Inputs() {
		fmt.Fprintf(b, "        self.%s.fill_%s(%q)\n", pageVar, naming.ElementName(el), value(el))
	}
}

// writeSubmitCall clicks the first button when the page has one
func writeSubmitCall(b *bytes.Buffer, info *domain.PageInfo, pageVar string) {
	buttons := info.Buttons()
	if len(buttons) == 0 {
		b.WriteString("        # No button was found; submit with Enter\n")
		b.WriteString("        self.page.keyboard.press(\"Enter\")\n")
		return
	}
	fmt.Fprintf(b, "        self.%s.click_%s()\n", pageVar, naming.ElementName(buttons[0]))
}
