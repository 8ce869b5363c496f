package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the travel search domain.
var (
	// ErrInvalidRequest indicates a query failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderFailure indicates the search aggregator could not be
	// reached or returned a non-success response.
	ErrProviderFailure = errors.New("provider failure")
)

// ProviderError wraps a failure from the search aggregator with the
// provider name and whether the failure is worth retrying. The server
// itself never retries; the flag is informational for callers and logs.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether a retry could plausibly succeed
	// (transport failures and 5xx responses, as opposed to 4xx)
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports that every ProviderError matches ErrProviderFailure, so
// callers can branch with errors.Is without knowing the concrete type.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}

// NewProviderError creates a ProviderError for the given provider.
func NewProviderError(provider string, err error, retryable bool) *ProviderError {
	return &ProviderError{
		Provider:  provider,
		Err:       err,
		Retryable: retryable,
	}
}
