// Package provider holds the types shared by the upstream text-generation
// adapters and the generation router.
package provider

import (
	"errors"
	"fmt"
	"net/http"
)

// Default generation parameters applied when a caller leaves them unset.
const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 800
)

// Params are the per-request generation knobs forwarded to a provider.
type Params struct {
	Temperature float64
	MaxTokens   int
	Task        string
}

// Error is a failure reported by an upstream provider. StatusCode is zero
// when no HTTP status was observed (missing configuration, transport error,
// unparseable response).
type Error struct {
	Provider   string
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Provider, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether the router should move on to the next provider.
func (e *Error) Retryable() bool {
	switch e.StatusCode {
	case 0,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// HTTPStatus is the status to surface to API callers; 500 when unknown.
func (e *Error) HTTPStatus() int {
	if e.StatusCode == 0 {
		return http.StatusInternalServerError
	}
	return e.StatusCode
}

// NewError builds a provider error without a status code.
func NewError(provider, message string, err error) *Error {
	return &Error{Provider: provider, Message: message, Err: err}
}

// NewStatusError builds a provider error carrying an upstream status code.
func NewStatusError(provider string, status int, message string) *Error {
	return &Error{Provider: provider, Message: message, StatusCode: status}
}

// AsError extracts a provider error from err.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Truncate shortens upstream bodies to at most n runes before they are
// logged or surfaced.
func Truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
