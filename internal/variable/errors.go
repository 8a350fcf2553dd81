// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package variable

import (
	"errors"
	"fmt"

	"github.com/pdiddy/fontgen/internal/httputil"
)

// ErrMissingCredential is returned by Fetch when no API key is supplied.
var ErrMissingCredential = errors.New("the API key is required")

// ParseError reports a response body that is not the expected JSON shape.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parsing API response: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failure writing the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("writing %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// FetchError wraps any failure of an attempted fetch. It unwraps to the
// underlying *httputil.StatusError, *ParseError, *WriteError or transport error.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string { return "API fetch error: " + e.Err.Error() }
func (e *FetchError) Unwrap() error { return e.Err }

// Kind is the failure category of an error returned by this package.
type Kind int

const (
	KindUnknown Kind = iota
	KindMissingCredential
	KindRequestFailed
	KindParse
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindRequestFailed:
		return "request_failed"
	case KindParse:
		return "parse_error"
	case KindIO:
		return "io_failure"
	default:
		return "unknown"
	}
}

// Classify returns the failure category of err. Transport errors such as
// DNS failures or timeouts are KindUnknown.
func Classify(err error) Kind {
	var (
		statusErr *httputil.StatusError
		parseErr  *ParseError
		writeErr  *WriteError
	)
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrMissingCredential):
		return KindMissingCredential
	case errors.As(err, &statusErr):
		return KindRequestFailed
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &writeErr):
		return KindIO
	default:
		return KindUnknown
	}
}
