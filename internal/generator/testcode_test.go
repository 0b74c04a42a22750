package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

func TestTestCodeModuleShape(t *testing.T) {
	out := NewTestCaseGenerator().Generate(loginPage())

	assert.Contains(t, out, "Login test suite.")
	assert.Contains(t, out, "pytest tests/test_login.py -v")
	assert.Contains(t, out, "import pytest")
	assert.Contains(t, out, "from pages.login_page import LoginPage")
	assert.Contains(t, out, "class TestLogin:")
	assert.Contains(t, out, "self.login_page = LoginPage(page)")
}

func TestTestCodeP0LoginFlows(t *testing.T) {
	out := NewTestCaseGenerator().Generate(loginPage())

	assert.Contains(t, out, "def test_p0_page_load(self):")
	assert.Contains(t, out, "TC-LOGIN-001")

	assert.Contains(t, out, "def test_p0_successful_login(self):")
	assert.Contains(t, out, `self.login_page.fill_username("test_value")`)
	assert.Contains(t, out, `self.login_page.fill_password("ValidPass123!")`)
	assert.Contains(t, out, "self.login_page.click_login()")
	assert.Contains(t, out, "assert not self.login_page.has_validation_error()")

	assert.Contains(t, out, "def test_p0_invalid_login_rejected(self):")
	assert.Contains(t, out, `self.login_page.fill_password("123")`)
	assert.Contains(t, out, "assert self.login_page.has_validation_error()")
}

func TestTestCodeP1PerInput(t *testing.T) {
	out := NewTestCaseGenerator().Generate(loginPage())

	assert.Contains(t, out, "def test_p1_username_accepts_input(self):")
	assert.Contains(t, out, "def test_p1_password_accepts_input(self):")
	assert.Equal(t, 2, strings.Count(out, "@pytest.mark.P1"))
}

func TestTestCodeP2Fixed(t *testing.T) {
	out := NewTestCaseGenerator().Generate(loginPage())

	assert.Contains(t, out, "def test_p2_ui_styling(self):")
	assert.Contains(t, out, "TC-LOGIN-201")
	assert.Contains(t, out, "self.page.screenshot(full_page=True)")
	assert.Contains(t, out, "def test_p2_keyboard_navigation(self):")
	assert.Contains(t, out, "TC-LOGIN-202")
	assert.Equal(t, 2, strings.Count(out, "@pytest.mark.P2"))
}

func TestTestCodeTypeFlowsOnlyForMatchingTypes(t *testing.T) {
	dashboard := loginPage()
	dashboard.PageType = domain.PageTypeDashboard

	out := NewTestCaseGenerator().Generate(dashboard)

	assert.Contains(t, out, "def test_p0_page_load(self):")
	assert.NotContains(t, out, "test_p0_successful_login")
	assert.NotContains(t, out, "test_p0_submit_with_valid_data")
	assert.NotContains(t, out, "test_p0_list_data_loads")
	assert.Equal(t, 1, strings.Count(out, "@pytest.mark.P0"))
}

func TestTestCodeFormFlow(t *testing.T) {
	form := loginPage()
	form.URL = "https://app.example.com/orders/create"
	form.PageType = domain.PageTypeForm

	out := NewTestCaseGenerator().Generate(form)

	assert.Contains(t, out, "class TestCreate:")
	assert.Contains(t, out, "def test_p0_submit_with_valid_data(self):")
	assert.Contains(t, out, "def test_p0_required_fields_validated(self):")
	assert.Contains(t, out, "TC-CREATE-003")
}

func TestTestCodeSubmitWithoutButtons(t *testing.T) {
	out := NewTestCaseGenerator().Generate(settingsPage())

	// settings page has no P0 type flow, but P1 still fills fields
	assert.Contains(t, out, "def test_p1_email_accepts_input(self):")
	assert.Contains(t, out, `self.settings_page.fill_email("test@example.com")`)
}
