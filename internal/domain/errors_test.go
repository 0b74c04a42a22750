package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestDomainErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *DomainError
		want string
	}{
		{
			name: "without cause",
			err:  &DomainError{Code: ErrCodeValidation, Message: "url is required"},
			want: "[VALIDATION_ERROR] url is required",
		},
		{
			name: "with cause",
			err:  &DomainError{Code: ErrCodeNavigationFailed, Message: "failed to navigate", Err: errors.New("net timeout")},
			want: "[NAVIGATION_FAILED] failed to navigate: net timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainErrorIs(t *testing.T) {
	navErr := NavigationError("https://app.example.com/login", errors.New("connection refused"))

	if !errors.Is(navErr, ErrNavigationFailedVal) {
		t.Error("NavigationError should match ErrNavigationFailedVal")
	}
	if errors.Is(navErr, ErrAnalysisFailedVal) {
		t.Error("NavigationError should not match ErrAnalysisFailedVal")
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("browser crashed")
	err := AnalysisError("https://app.example.com/login", "launching browser", cause)

	wrapped := fmt.Errorf("pipeline: %w", err)
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the original cause through the chain")
	}

	var domainErr *DomainError
	if !errors.As(wrapped, &domainErr) {
		t.Fatal("errors.As should find the DomainError in the chain")
	}
	if domainErr.Code != ErrCodeAnalysisFailed {
		t.Errorf("Code = %q, want %q", domainErr.Code, ErrCodeAnalysisFailed)
	}
}

func TestAnalysisErrorsCarryURL(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"navigation", NavigationError("https://app.example.com/login", errors.New("timeout"))},
		{"analysis", AnalysisError("https://app.example.com/login", "starting browser", errors.New("boom"))},
		{"timeout", TimeoutError("goto", "https://app.example.com/login")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := ErrorURL(tt.err)
			if !ok {
				t.Fatal("ErrorURL() did not find a url")
			}
			if url != "https://app.example.com/login" {
				t.Errorf("ErrorURL() = %q, want the attempted url", url)
			}
		})
	}
}

func TestErrorURLOnForeignError(t *testing.T) {
	if _, ok := ErrorURL(errors.New("plain")); ok {
		t.Error("ErrorURL() should report false for non-domain errors")
	}
	if _, ok := ErrorURL(ValidationError("url", "url is required")); ok {
		t.Error("ErrorURL() should report false when no url detail is attached")
	}
}

func TestValidationError(t *testing.T) {
	err := ValidationError("url", "url is required")

	if err.Code != ErrCodeValidation {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeValidation)
	}
	if !IsSentinelError(err, ErrInvalidInputVal) {
		t.Error("ValidationError should match the invalid input sentinel")
	}
	if field := err.Details["field"]; field != "url" {
		t.Errorf("Details[field] = %v, want %q", field, "url")
	}
}

func TestGenerationError(t *testing.T) {
	err := GenerationError("test plan", errors.New("template broken"))

	if !IsSentinelError(err, ErrGenerationFailedVal) {
		t.Error("GenerationError should match the generation failed sentinel")
	}
	if !strings.Contains(err.Error(), "test plan") {
		t.Errorf("Error() = %q, should name the artifact", err.Error())
	}
}
