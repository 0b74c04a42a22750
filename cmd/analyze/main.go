package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/analyzer"
	"github.com/scaffoldhq/scaffold/internal/config"
)

func main() {
	// Parse flags
	url := flag.String("url", "https://demo.playwright.dev/todomvc", "Target URL to analyze")
	timeout := flag.Duration("timeout", 2*time.Minute, "Analysis timeout")
	output := flag.String("output", "", "Output file for JSON result (empty for stdout)")
	headless := flag.Bool("headless", true, "Run browser in headless mode")
	settle := flag.Duration("settle", 2*time.Second, "Extra wait after page load")

	// Auth flags - credentials should come from environment variables for security
	loginURL := flag.String("login-url", "", "Login page URL for credential auth")
	usernameSelector := flag.String("username-selector", "#username", "CSS selector for username field")
	passwordSelector := flag.String("password-selector", "#password", "CSS selector for password field")
	submitSelector := flag.String("submit-selector", "button[type='submit']", "CSS selector for submit button")
	successIndicator := flag.String("success-indicator", "", "URL pattern or selector to verify login success")

	// Get credentials from environment variables (never from CLI args for security)
	username := os.Getenv("SCAFFOLD_AUTH_USERNAME")
	password := os.Getenv("SCAFFOLD_AUTH_PASSWORD")

	flag.Parse()

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	fmt.Printf("Starting analysis for: %s\n", *url)
	fmt.Printf("Timeout: %s, Headless: %v\n", *timeout, *headless)
	fmt.Println("---")

	browserCfg := config.BrowserConfig{
		Headless:          *headless,
		NavigationTimeout: 30 * time.Second,
		SettleDelay:       *settle,
		ViewportWidth:     1920,
		ViewportHeight:    1080,
	}

	// Build auth func if login URL is provided
	var auth analyzer.AuthFunc
	if *loginURL != "" && username != "" && password != "" {
		fmt.Printf("Authentication enabled: %s\n", *loginURL)
		auth = analyzer.CredentialsAuth(analyzer.Credentials{
			LoginURL:         *loginURL,
			UsernameSelector: *usernameSelector,
			PasswordSelector: *passwordSelector,
			SubmitSelector:   *submitSelector,
			Username:         username,
			Password:         password,
			SuccessIndicator: *successIndicator,
			WaitAfterLogin:   2 * time.Second,
		})
	}

	an := analyzer.New(browserCfg, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	startTime := time.Now()
	info, err := an.Analyze(ctx, *url, auth)
	if err != nil {
		fmt.Printf("Error analyzing page: %v\n", err)
		os.Exit(1)
	}
	duration := time.Since(startTime)

	// Print results
	fmt.Println("---")
	fmt.Println("Analysis Results:")
	fmt.Printf("├── Title: %s\n", info.Title)
	fmt.Printf("├── Page Type: %s\n", info.PageType)
	fmt.Printf("├── Elements: %d\n", len(info.Elements))
	fmt.Printf("├── Inputs: %d\n", len(info.Inputs()))
	fmt.Printf("├── Buttons: %d\n", len(info.Buttons()))
	fmt.Printf("├── Selects: %d\n", len(info.Selects()))
	fmt.Printf("├── Forms: %d\n", len(info.Forms))
	fmt.Printf("├── Nav Links: %d\n", len(info.Navigation))
	fmt.Printf("└── Duration: %s\n", duration.Round(time.Millisecond))

	// Print elements
	if len(info.Elements) > 0 {
		fmt.Println("\nElements:")
		for _, el := range info.Elements {
			flags := ""
			if el.Required {
				flags += " [REQUIRED]"
			}
			if el.Disabled {
				flags += " [DISABLED]"
			}
			fmt.Printf("  - %s (%s)%s\n", el.Selector, el.Kind, flags)
			if el.Text != "" {
				fmt.Printf("    Text: %s\n", el.Text)
			}
		}
	}

	jsonData, err := info.ToJSON()
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		os.Exit(1)
	}

	if *output != "" {
		if err := os.WriteFile(*output, jsonData, 0644); err != nil {
			fmt.Printf("Error writing file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nJSON output saved to: %s\n", *output)
	} else {
		fmt.Println("\nPage JSON:")
		fmt.Println(string(jsonData))
	}
}
