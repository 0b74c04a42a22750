package generator

import "github.com/scaffoldhq/scaffold/internal/domain"

// loginPage is a minimal but realistic login page analysis result
func loginPage() *domain.PageInfo {
	return &domain.PageInfo{
		URL:      "https://app.example.com/login",
		Title:    "Sign In - Example",
		PageType: domain.PageTypeLogin,
		Elements: []domain.PageElement{
			{
				Selector:   "#username",
				Tag:        "input",
				Kind:       domain.KindInput,
				Name:       "username",
				ID:         "username",
				Required:   true,
				Attributes: domain.ElementAttributes{Type: "text"},
			},
			{
				Selector:   "#password",
				Tag:        "input",
				Kind:       domain.KindInput,
				Name:       "password",
				ID:         "password",
				Required:   true,
				Attributes: domain.ElementAttributes{Type: "password"},
			},
			{
				Selector:   "button.btn-primary",
				Tag:        "button",
				Kind:       domain.KindButton,
				Text:       "Login",
				Attributes: domain.ElementAttributes{Type: "submit"},
			},
			{
				Selector: "a.forgot",
				Tag:      "a",
				Kind:     domain.KindLink,
				Text:     "Forgot password?",
			},
		},
		Forms: []domain.FormDescriptor{
			{
				Action: "/session",
				Method: "POST",
				Inputs: []domain.FormInput{
					{Name: "username", Type: "text", Required: true},
					{Name: "password", Type: "password", Required: true},
				},
			},
		},
		Navigation: []domain.NavigationLink{
			{Text: "Home", Href: "/"},
		},
	}
}

// settingsPage has a select and no buttons, useful for edge cases
func settingsPage() *domain.PageInfo {
	return &domain.PageInfo{
		URL:      "https://app.example.com/settings",
		Title:    "Settings",
		PageType: domain.PageTypeSettings,
		Elements: []domain.PageElement{
			{
				Selector:   "[name='email']",
				Tag:        "input",
				Kind:       domain.KindInput,
				Name:       "email",
				Attributes: domain.ElementAttributes{Type: "email"},
			},
			{
				Selector: "#locale",
				Tag:      "select",
				Kind:     domain.KindSelect,
				ID:       "locale",
				Name:     "locale",
			},
		},
	}
}
