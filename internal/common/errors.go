// Package common defines shared sentinel and typed errors used across
// WorldQuery components. Callers should use errors.Is / errors.As to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Sign-up errors.
	ErrDuplicateUser = errors.New("user already exists with this email")

	// External data source errors (network failure or non-2xx response).
	ErrFetchFailed = errors.New("failed to fetch countries")

	// Cache errors.
	ErrNotLoaded = errors.New("country data not loaded")
	ErrNotFound  = errors.New("not found")
)

// ValidationError reports a sign-up form rule violation. Message is the
// user-facing text; Field and Rule identify the failed check for callers
// that need to distinguish rules.
type ValidationError struct {
	Field   string
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FetchError wraps ErrFetchFailed with request detail. StatusCode is zero
// when the request never produced a response.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrFetchFailed
}

// Is lets errors.Is(err, ErrFetchFailed) match any FetchError regardless
// of whether it wraps a transport error or a bad status.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
