// Package apperror defines the error taxonomy shared across the application.
package apperror

import "fmt"

// AuthError represents a rejected credential pair or an invalid token.
// It is surfaced to the caller as a user-visible rejection and never retried.
type AuthError struct {
	UserID string
}

func (e *AuthError) Error() string {
	if e.UserID == "" {
		return "invalid credentials"
	}
	return fmt.Sprintf("invalid credentials for user '%s'", e.UserID)
}

// FetchError represents a failed snapshot load. The pipeline proceeds with
// an empty snapshot; the message is surfaced to the caller, not fatal.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to load transactions from %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
