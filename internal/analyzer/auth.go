package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Credentials configures the stock form-login AuthFunc
type Credentials struct {
	LoginURL         string
	UsernameSelector string
	PasswordSelector string
	SubmitSelector   string
	Username         string
	Password         string

	// SuccessIndicator is either a URL fragment the post-login URL must
	// contain, or a selector that must become visible. Empty skips the check.
	SuccessIndicator string

	// WaitAfterLogin gives the app time to establish its session
	WaitAfterLogin time.Duration
}

// CredentialsAuth returns an AuthFunc that performs a username/password form
// login before the target page is analyzed
func CredentialsAuth(creds Credentials) AuthFunc {
	return func(page playwright.Page) error {
		if _, err := page.Goto(creds.LoginURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(30000),
		}); err != nil {
			return fmt.Errorf("navigating to login page: %w", err)
		}

		if _, err := page.WaitForSelector(creds.UsernameSelector, playwright.PageWaitForSelectorOptions{
			State:   playwright.WaitForSelectorStateVisible,
			Timeout: playwright.Float(10000),
		}); err != nil {
			return fmt.Errorf("waiting for username field: %w", err)
		}

		if err := page.Locator(creds.UsernameSelector).Fill(creds.Username); err != nil {
			return fmt.Errorf("filling username: %w", err)
		}
		if err := page.Locator(creds.PasswordSelector).Fill(creds.Password); err != nil {
			return fmt.Errorf("filling password: %w", err)
		}
		if err := page.Locator(creds.SubmitSelector).Click(); err != nil {
			return fmt.Errorf("clicking submit: %w", err)
		}

		page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
			State:   playwright.LoadStateDomcontentloaded,
			Timeout: playwright.Float(10000),
		})

		wait := creds.WaitAfterLogin
		if wait <= 0 {
			wait = 3 * time.Second
		}
		time.Sleep(wait)

		if creds.SuccessIndicator != "" {
			return verifyLoginSuccess(page, creds.SuccessIndicator)
		}
		return nil
	}
}

// verifyLoginSuccess checks either the current URL or a visible selector,
// depending on the shape of the indicator
func verifyLoginSuccess(page playwright.Page, indicator string) error {
	if strings.HasPrefix(indicator, "http") || strings.HasPrefix(indicator, "/") {
		if strings.Contains(page.URL(), indicator) {
			return nil
		}
		// Redirects can lag the load state
		time.Sleep(1 * time.Second)
		if strings.Contains(page.URL(), indicator) {
			return nil
		}
		return fmt.Errorf("expected URL to contain %s, got %s", indicator, page.URL())
	}

	if _, err := page.WaitForSelector(indicator, playwright.PageWaitForSelectorOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	}); err != nil {
		return fmt.Errorf("success indicator not found: %s", indicator)
	}
	return nil
}
