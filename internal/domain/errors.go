package domain

import (
	"errors"
	"fmt"
)

// Error codes for categorization
const (
	// Client errors (4xx)
	ErrCodeValidation  = "VALIDATION_ERROR"
	ErrCodeNotFound    = "NOT_FOUND"
	ErrCodeBadRequest  = "BAD_REQUEST"
	ErrCodeRateLimited = "RATE_LIMITED"

	// Server errors (5xx)
	ErrCodeInternal = "INTERNAL_ERROR"
	ErrCodeTimeout  = "TIMEOUT_ERROR"

	// Pipeline errors
	ErrCodeNavigationFailed = "NAVIGATION_FAILED"
	ErrCodeAnalysisFailed   = "ANALYSIS_FAILED"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
)

// DomainError is a structured error for domain operations
type DomainError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for error comparison
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel domain errors (used with errors.Is)
var (
	ErrNotFoundVal         = &DomainError{Code: ErrCodeNotFound, Message: "not found"}
	ErrInvalidInputVal     = &DomainError{Code: ErrCodeValidation, Message: "invalid input"}
	ErrNavigationFailedVal = &DomainError{Code: ErrCodeNavigationFailed, Message: "navigation failed"}
	ErrAnalysisFailedVal   = &DomainError{Code: ErrCodeAnalysisFailed, Message: "analysis failed"}
	ErrGenerationFailedVal = &DomainError{Code: ErrCodeGenerationFailed, Message: "generation failed"}
	ErrTimeoutVal          = &DomainError{Code: ErrCodeTimeout, Message: "timed out"}
)

// IsSentinelError checks if err matches a sentinel error
func IsSentinelError(err error, sentinel *DomainError) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == sentinel.Code
	}
	return false
}

// ValidationError creates a validation domain error
func ValidationError(field, message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidation,
		Message: message,
		Details: map[string]any{"field": field},
		Err:     ErrInvalidInputVal,
	}
}

// NotFoundError creates a not found domain error
func NotFoundError(resource string, id any) *DomainError {
	return &DomainError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Details: map[string]any{"resource": resource, "id": id},
		Err:     ErrNotFoundVal,
	}
}

// NavigationError reports a failure to reach the target page. The attempted
// URL always travels with the error.
func NavigationError(url string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeNavigationFailed,
		Message: fmt.Sprintf("failed to navigate to %s", url),
		Details: map[string]any{"url": url},
		Err:     err,
	}
}

// AnalysisError reports a fatal failure of a page analysis phase. The
// attempted URL always travels with the error.
func AnalysisError(url, phase string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeAnalysisFailed,
		Message: fmt.Sprintf("analysis failed while %s", phase),
		Details: map[string]any{"url": url, "phase": phase},
		Err:     err,
	}
}

// GenerationError reports a failure to render an artifact. These indicate
// programming errors and should never be swallowed.
func GenerationError(artifact string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeGenerationFailed,
		Message: fmt.Sprintf("failed to generate %s", artifact),
		Details: map[string]any{"artifact": artifact},
		Err:     err,
	}
}

// TimeoutError reports an operation that exceeded its deadline
func TimeoutError(operation, url string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Details: map[string]any{"operation": operation, "url": url},
		Err:     ErrTimeoutVal,
	}
}

// ErrorURL extracts the URL attached to a domain error, if any
func ErrorURL(err error) (string, bool) {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Details == nil {
		return "", false
	}
	url, ok := domainErr.Details["url"].(string)
	return url, ok && url != ""
}
