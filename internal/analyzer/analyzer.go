// Package analyzer drives a real browser against a target URL and distills
// the page into the structural model the generators consume.
package analyzer

import (
	"context"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/scaffoldhq/scaffold/internal/config"
	"github.com/scaffoldhq/scaffold/internal/domain"
)

// AuthFunc performs an authentication flow on a fresh page before the target
// URL is loaded. A nil AuthFunc skips authentication.
type AuthFunc func(page playwright.Page) error

// Analyzer analyzes single pages. One browser session is created per
// Analyze call and always torn down, success or failure.
type Analyzer struct {
	cfg     config.BrowserConfig
	logger  *zap.Logger
	extract *extractor
}

// New creates a page analyzer
func New(cfg config.BrowserConfig, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		cfg:     cfg,
		logger:  logger,
		extract: newExtractor(logger),
	}
}

// Analyze loads targetURL in a browser, waits for the page to settle, and
// extracts its structure. Fatal failures return a typed error carrying the
// attempted URL; per-element failures are swallowed and surface as missing
// data.
func (a *Analyzer) Analyze(ctx context.Context, targetURL string, auth AuthFunc) (*domain.PageInfo, error) {
	if targetURL == "" {
		return nil, domain.ValidationError("url", "url is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, domain.AnalysisError(targetURL, "starting analysis", err)
	}

	a.logger.Info("starting page analysis",
		zap.String("url", targetURL),
		zap.Bool("headless", a.cfg.Headless))

	pw, err := playwright.Run()
	if err != nil {
		return nil, domain.AnalysisError(targetURL, "starting playwright", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(a.cfg.Headless),
	})
	if err != nil {
		return nil, domain.AnalysisError(targetURL, "launching browser", err)
	}
	defer browser.Close()

	browserCtx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  a.cfg.ViewportWidth,
			Height: a.cfg.ViewportHeight,
		},
		IgnoreHttpsErrors: playwright.Bool(true),
	})
	if err != nil {
		return nil, domain.AnalysisError(targetURL, "creating browser context", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, domain.AnalysisError(targetURL, "opening page", err)
	}

	if auth != nil {
		if err := auth(page); err != nil {
			return nil, domain.AnalysisError(targetURL, "authenticating", err)
		}
	}

	if _, err := page.Goto(targetURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(float64(a.cfg.NavigationTimeout.Milliseconds())),
	}); err != nil {
		return nil, domain.NavigationError(targetURL, err)
	}

	// Give client-side rendering a moment after network idle
	page.WaitForTimeout(float64(a.cfg.SettleDelay.Milliseconds()))

	info := a.inspect(newPageDocument(page), targetURL)

	a.logger.Info("page analysis completed",
		zap.String("url", targetURL),
		zap.String("page_type", string(info.PageType)),
		zap.Int("elements", len(info.Elements)),
		zap.Int("forms", len(info.Forms)),
		zap.Int("nav_links", len(info.Navigation)))

	return info, nil
}

// inspect runs classification and the four extraction passes over a loaded
// document
func (a *Analyzer) inspect(doc Document, targetURL string) *domain.PageInfo {
	title, err := doc.Title()
	if err != nil {
		a.logger.Debug("title read failed", zap.Error(err))
		title = ""
	}

	return &domain.PageInfo{
		URL:        targetURL,
		Title:      title,
		PageType:   classify(doc, targetURL),
		Elements:   a.extract.elements(doc),
		Forms:      a.extract.forms(doc),
		Navigation: a.extract.navigation(doc),
	}
}
