package naming

import (
	"reflect"
	"testing"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Login", "login"},
		{"camel case", "userProfile", "user_profile"},
		{"pascal case", "UserProfile", "user_profile"},
		{"spaces", "Sign in", "sign_in"},
		{"hyphens", "user-profile", "user_profile"},
		{"mixed separators", "user - profile", "user_profile"},
		{"digits", "ValidPass123", "valid_pass123"},
		{"already snake", "user_profile", "user_profile"},
		{"leading junk", "--login--", "login"},
		{"empty", "", ""},
		{"only separators", "---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToSnakeCase(tt.input); got != tt.want {
				t.Errorf("ToSnakeCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToSnakeCaseIdempotent(t *testing.T) {
	inputs := []string{"Login", "User Profile", "ValidPass123!", "nav-menu-item", "already_snake"}

	for _, input := range inputs {
		once := ToSnakeCase(input)
		twice := ToSnakeCase(once)
		if once != twice {
			t.Errorf("ToSnakeCase is not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestToClassName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single word", "login", "Login"},
		{"spaced", "User Profile", "UserProfile"},
		{"snake", "user_profile", "UserProfile"},
		{"already pascal", "UserProfile", "UserProfile"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToClassName(tt.input); got != tt.want {
				t.Errorf("ToClassName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPageNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"login page", "https://app.example.com/login", "Login"},
		{"nested path", "https://app.example.com/users/profile", "Profile"},
		{"hyphenated segment", "https://app.example.com/user-settings", "User Settings"},
		{"trailing slash", "https://app.example.com/login/", "Login"},
		{"root", "https://app.example.com/", "Home"},
		{"no path", "https://app.example.com", "Home"},
		{"with extension", "https://app.example.com/signup.html", "Signup"},
		{"with query", "https://app.example.com/orders?page=2", "Orders"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PageNameFromURL(tt.url); got != tt.want {
				t.Errorf("PageNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestFileNameFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"login", "https://app.example.com/login", "login"},
		{"hyphenated", "https://app.example.com/user-settings", "user_settings"},
		{"root", "https://app.example.com/", "home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileNameFromURL(tt.url); got != tt.want {
				t.Errorf("FileNameFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestTCPrefixFromURL(t *testing.T) {
	if got := TCPrefixFromURL("https://app.example.com/login"); got != "LOGIN" {
		t.Errorf("TCPrefixFromURL() = %q, want %q", got, "LOGIN")
	}
	if got := TCPrefixFromURL("https://app.example.com/user-settings"); got != "USER_SETTINGS" {
		t.Errorf("TCPrefixFromURL() = %q, want %q", got, "USER_SETTINGS")
	}
}

func TestURLPath(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"with path", "https://app.example.com/login", "/login"},
		{"root", "https://app.example.com/", "/"},
		{"no path", "https://app.example.com", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := URLPath(tt.url); got != tt.want {
				t.Errorf("URLPath(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestElementName(t *testing.T) {
	tests := []struct {
		name string
		el   domain.PageElement
		want string
	}{
		{
			name: "prefers name",
			el:   domain.PageElement{Name: "username", ID: "user-field", Kind: domain.KindInput},
			want: "username",
		},
		{
			name: "falls back to id",
			el:   domain.PageElement{ID: "user-field", Kind: domain.KindInput},
			want: "user_field",
		},
		{
			name: "falls back to text",
			el:   domain.PageElement{Text: "Sign in", Kind: domain.KindButton},
			want: "sign_in",
		},
		{
			name: "falls back to placeholder",
			el:   domain.PageElement{Placeholder: "Enter email", Kind: domain.KindInput},
			want: "enter_email",
		},
		{
			name: "falls back to kind",
			el:   domain.PageElement{Kind: domain.KindButton},
			want: "button",
		},
		{
			name: "whitespace text ignored",
			el:   domain.PageElement{Text: "   ", Kind: domain.KindLink},
			want: "link",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementName(tt.el); got != tt.want {
				t.Errorf("ElementName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementConstantName(t *testing.T) {
	tests := []struct {
		name string
		el   domain.PageElement
		want string
	}{
		{
			name: "from name",
			el:   domain.PageElement{Name: "username", Tag: "input", Kind: domain.KindInput},
			want: "USERNAME",
		},
		{
			name: "from id",
			el:   domain.PageElement{ID: "login-btn", Tag: "button", Kind: domain.KindButton},
			want: "LOGIN_BTN",
		},
		{
			name: "disambiguates by type attribute",
			el: domain.PageElement{
				Tag:        "input",
				Kind:       domain.KindInput,
				Attributes: domain.ElementAttributes{Type: "password"},
			},
			want: "INPUT_PASSWORD",
		},
		{
			name: "disambiguates by text",
			el:   domain.PageElement{Tag: "button", Kind: domain.KindButton, Text: "Save"},
			want: "BUTTON_SAVE",
		},
		{
			name: "falls back to tag and kind",
			el:   domain.PageElement{Tag: "a", Kind: domain.KindLink},
			want: "A_LINK",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementConstantName(tt.el); got != tt.want {
				t.Errorf("ElementConstantName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementDescription(t *testing.T) {
	el := domain.PageElement{Kind: domain.KindButton, Text: "Login"}
	if got := ElementDescription(el); got != "button: Login" {
		t.Errorf("ElementDescription() = %q, want %q", got, "button: Login")
	}

	bare := domain.PageElement{Kind: domain.KindSelect}
	if got := ElementDescription(bare); got != "dropdown" {
		t.Errorf("ElementDescription() = %q, want %q", got, "dropdown")
	}
}

func TestPageDescriptionCoversAllTypes(t *testing.T) {
	for _, pt := range domain.PageTypes {
		if PageDescription(pt) == "" {
			t.Errorf("PageDescription(%v) is empty", pt)
		}
	}
}

func TestTestDimensions(t *testing.T) {
	tests := []struct {
		pageType domain.PageType
		want     []string
	}{
		{domain.PageTypeLogin, []string{"functional", "security", "boundary", "exception", "ui"}},
		{domain.PageTypeRegister, []string{"functional", "validation", "boundary", "exception", "ui"}},
		{domain.PageTypeForm, []string{"functional", "validation", "boundary", "exception", "data"}},
		{domain.PageTypeList, []string{"functional", "pagination", "filter", "performance", "ui"}},
		{domain.PageTypeDetail, []string{"functional", "data", "navigation", "ui"}},
		{domain.PageTypeDashboard, []string{"functional", "data", "performance", "ui"}},
		{domain.PageTypeSettings, []string{"functional", "validation", "persistence", "ui"}},
		{domain.PageType("WIZARD"), []string{"functional"}},
	}

	for _, tt := range tests {
		got := TestDimensions(tt.pageType)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TestDimensions(%v) = %v, want %v", tt.pageType, got, tt.want)
		}
	}
}

func TestRequiresAuth(t *testing.T) {
	tests := []struct {
		pageType domain.PageType
		want     bool
	}{
		{domain.PageTypeDashboard, true},
		{domain.PageTypeSettings, true},
		{domain.PageTypeDetail, true},
		{domain.PageTypeLogin, false},
		{domain.PageTypeRegister, false},
		{domain.PageTypeForm, false},
		{domain.PageTypeList, false},
	}

	for _, tt := range tests {
		if got := RequiresAuth(tt.pageType); got != tt.want {
			t.Errorf("RequiresAuth(%v) = %v, want %v", tt.pageType, got, tt.want)
		}
	}
}
