package analyzer

import (
	"regexp"

	"github.com/scaffoldhq/scaffold/internal/domain"
)

// typeRule is one row of the classification table. URL pattern hits score 2,
// DOM selector hits score 1. Rule order doubles as the tie-break order.
type typeRule struct {
	pageType    domain.PageType
	urlPatterns []*regexp.Regexp
	selectors   []string
}

func urlPatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+p))
	}
	return compiled
}

var classificationRules = []typeRule{
	{
		pageType:    domain.PageTypeLogin,
		urlPatterns: urlPatterns(`/login`, `/signin`, `/auth`),
		selectors: []string{
			`input[type='password']`,
			`button:has-text('Login')`,
			`button:has-text('Sign in')`,
		},
	},
	{
		pageType:    domain.PageTypeRegister,
		urlPatterns: urlPatterns(`/register`, `/signup`, `/join`),
		selectors: []string{
			`input[type='password']`,
			`button:has-text('Register')`,
			`button:has-text('Sign up')`,
		},
	},
	{
		pageType:    domain.PageTypeForm,
		urlPatterns: urlPatterns(`/edit`, `/create`, `/new`, `/add`),
		selectors:   []string{`form`, `input`, `textarea`, `select`},
	},
	{
		pageType:    domain.PageTypeList,
		urlPatterns: urlPatterns(`/list`, `/index`, `/all`),
		selectors:   []string{`table`, `[role='grid']`, `.pagination`, `.list-item`},
	},
	{
		pageType:    domain.PageTypeDetail,
		urlPatterns: urlPatterns(`/view`, `/detail`, `/show`, `/\d+$`),
		selectors:   []string{`.detail`, `.view`, `button:has-text('Edit')`},
	},
	{
		pageType:    domain.PageTypeDashboard,
		urlPatterns: urlPatterns(`/dashboard`, `/home`, `/overview`),
		selectors:   []string{`.card`, `.widget`, `.chart`, `.stats`},
	},
	{
		pageType:    domain.PageTypeSettings,
		urlPatterns: urlPatterns(`/settings`, `/profile`, `/preferences`, `/config`),
		selectors:   []string{`input`, `select`, `button:has-text('Save')`},
	},
}

// classify scores every rule against the URL and the live DOM and returns
// the highest-scoring page type. Ties keep the earlier rule; a page that
// matches nothing is treated as a generic form page.
func classify(doc Document, pageURL string) domain.PageType {
	best := domain.PageTypeForm
	bestScore := 0

	for _, rule := range classificationRules {
		score := 0
		for _, pattern := range rule.urlPatterns {
			if pattern.MatchString(pageURL) {
				score += 2
			}
		}
		for _, selector := range rule.selectors {
			if tryCount(doc, selector) > 0 {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule.pageType
		}
	}

	return best
}
