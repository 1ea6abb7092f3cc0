package feed

import (
	"errors"
	"fmt"
)

// FetchError reports a failed upstream fetch: a transport error, a timeout,
// or a non-304 HTTP error status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fErr *FetchError
	if errors.As(err, &fErr) {
		return fErr, true
	}
	return nil, false
}

// ParseError reports a malformed upstream document.
type ParseError struct {
	Resource string // "schedule" or "detail"
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// NormalizationError reports a detail document that is present but matches
// the requested team on neither side. It signals an upstream data-contract
// violation and must be surfaced, never swallowed.
type NormalizationError struct {
	Team    string
	EventID string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("detail for event %s matches neither side for team %q", e.EventID, e.Team)
}

// AsNormalizationError attempts to unwrap an error into a NormalizationError.
func AsNormalizationError(err error) (*NormalizationError, bool) {
	var nErr *NormalizationError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}
