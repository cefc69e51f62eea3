// Package errors provides custom error types for domain-specific errors.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors
var (
	ErrConfigInvalid  = errors.New("invalid configuration")
	ErrMissingAPIKey  = errors.New("missing provider API key")
	ErrStoreCorrupt   = errors.New("watchlist document corrupt")
	ErrSymbolNotFound = errors.New("symbol not found")
)

// ProviderError represents an error envelope reported by the market data
// provider. It is raised instead of the generic transport error whenever the
// response body decodes to the provider's error shape, so callers can branch
// on provider-reported text versus connectivity failure.
type ProviderError struct {
	Status  string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error [%s]: %s", e.Status, e.Message)
}

// NewProviderError creates a new ProviderError.
func NewProviderError(status, message string) *ProviderError {
	return &ProviderError{Status: status, Message: message}
}

// RequestError represents a transport-level failure for one endpoint call.
type RequestError struct {
	Endpoint string
	Symbol   string
	Err      error
}

func (e *RequestError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("request error [%s] %s: %v", e.Endpoint, e.Symbol, e.Err)
	}
	return fmt.Sprintf("request error [%s]: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// NewRequestError creates a new RequestError.
func NewRequestError(endpoint, symbol string, err error) *RequestError {
	return &RequestError{Endpoint: endpoint, Symbol: symbol, Err: err}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// DisplayMessage converts any error into the string shown to the user.
// Provider errors surface the provider's own message; everything else
// surfaces its generic description.
func DisplayMessage(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}
