// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across commands.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	StatusCode int
	// StatusText is the reason phrase, e.g. "Forbidden".
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Response code %d (%s)", e.StatusCode, e.StatusText)
}

// Get issues a single GET request to url. Requests are never retried.
//
// When the server answers with a non-2xx status the body is drained and
// closed and a *StatusError is returned. Otherwise the caller owns the
// response body.
func Get(ctx context.Context, client *http.Client, url, userAgent string) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}
	return resp, nil
}

// statusText extracts the reason phrase from resp.Status ("403 Forbidden"),
// falling back to the canonical text for the code.
func statusText(resp *http.Response) string {
	code := fmt.Sprintf("%d", resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
