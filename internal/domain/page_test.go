package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPageTypeIsValid(t *testing.T) {
	tests := []struct {
		name     string
		pageType PageType
		want     bool
	}{
		{"login", PageTypeLogin, true},
		{"register", PageTypeRegister, true},
		{"form", PageTypeForm, true},
		{"list", PageTypeList, true},
		{"detail", PageTypeDetail, true},
		{"dashboard", PageTypeDashboard, true},
		{"settings", PageTypeSettings, true},
		{"unknown", PageType("WIZARD"), false},
		{"empty", PageType(""), false},
		{"lowercase", PageType("login"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pageType.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageTypesOrder(t *testing.T) {
	want := []PageType{
		PageTypeLogin,
		PageTypeRegister,
		PageTypeForm,
		PageTypeList,
		PageTypeDetail,
		PageTypeDashboard,
		PageTypeSettings,
	}

	if len(PageTypes) != len(want) {
		t.Fatalf("len(PageTypes) = %d, want %d", len(PageTypes), len(want))
	}
	for i, pt := range want {
		if PageTypes[i] != pt {
			t.Errorf("PageTypes[%d] = %v, want %v", i, PageTypes[i], pt)
		}
	}
}

func TestElementKindIsValid(t *testing.T) {
	tests := []struct {
		name string
		kind ElementKind
		want bool
	}{
		{"input", KindInput, true},
		{"button", KindButton, true},
		{"link", KindLink, true},
		{"select", KindSelect, true},
		{"unknown", ElementKind("iframe"), false},
		{"empty", ElementKind(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPageInfoElementsByKind(t *testing.T) {
	info := &PageInfo{
		Elements: []PageElement{
			{Selector: "#username", Kind: KindInput},
			{Selector: "#login", Kind: KindButton},
			{Selector: "#password", Kind: KindInput},
			{Selector: "a.home", Kind: KindLink},
			{Selector: "#country", Kind: KindSelect},
		},
	}

	inputs := info.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("Inputs() returned %d elements, want 2", len(inputs))
	}
	if inputs[0].Selector != "#username" || inputs[1].Selector != "#password" {
		t.Errorf("Inputs() did not preserve discovery order: %v", inputs)
	}

	if got := len(info.Buttons()); got != 1 {
		t.Errorf("Buttons() returned %d elements, want 1", got)
	}
	if got := len(info.Selects()); got != 1 {
		t.Errorf("Selects() returned %d elements, want 1", got)
	}
}

func TestPageInfoToJSON(t *testing.T) {
	info := &PageInfo{
		URL:      "https://app.example.com/login",
		Title:    "Sign In",
		PageType: PageTypeLogin,
		Elements: []PageElement{
			{
				Selector: "#password",
				Tag:      "input",
				Kind:     KindInput,
				Name:     "password",
				Required: true,
				Attributes: ElementAttributes{
					Type: "password",
				},
			},
		},
		Forms:      []FormDescriptor{{Method: "POST", Inputs: []FormInput{{Name: "password", Type: "password", Required: true}}}},
		Navigation: []NavigationLink{{Text: "Home", Href: "/"}},
	}

	out, err := info.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded PageInfo
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if decoded.PageType != PageTypeLogin {
		t.Errorf("round-trip PageType = %v, want %v", decoded.PageType, PageTypeLogin)
	}
	if !strings.Contains(string(out), "\n  \"url\"") {
		t.Errorf("ToJSON() output is not indented:\n%s", out)
	}
}
