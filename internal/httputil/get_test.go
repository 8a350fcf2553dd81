// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "fontgen-test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"items":[]}`))
	}))
	defer ts.Close()

	resp, err := Get(context.Background(), ts.Client(), ts.URL, "fontgen-test")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_StatusError(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantText string
	}{
		{"forbidden", http.StatusForbidden, "Forbidden"},
		{"server error", http.StatusInternalServerError, "Internal Server Error"},
		{"rate limited", http.StatusTooManyRequests, "Too Many Requests"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(tt.code)
			}))
			defer ts.Close()

			resp, err := Get(context.Background(), ts.Client(), ts.URL, "")
			assert.Nil(t, resp)

			var se *StatusError
			require.True(t, errors.As(err, &se), "expected *StatusError, got %v", err)
			assert.Equal(t, tt.code, se.StatusCode)
			assert.Equal(t, tt.wantText, se.StatusText)
			// No retry, even for 429.
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		})
	}
}

func TestStatusError_Message(t *testing.T) {
	err := &StatusError{StatusCode: 403, StatusText: "Forbidden"}
	assert.Equal(t, "Response code 403 (Forbidden)", err.Error())
}

func TestGet_ContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "")
	assert.ErrorIs(t, err, context.Canceled)
}
