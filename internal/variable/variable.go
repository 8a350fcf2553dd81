// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package variable generates the variable-font dataset from the Google
// Fonts Developer API: one GET, one transform, one file write per run.
//
// See https://developers.google.com/fonts/docs/developer_api#variable_fonts.
package variable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/fontgen/internal/httputil"
	"github.com/pdiddy/fontgen/internal/icons"
	"github.com/pdiddy/fontgen/internal/jsonfmt"
	"github.com/pdiddy/fontgen/pkg/types"
)

const (
	// DefaultBaseURL requests every variable family with its axes. The API
	// key is appended to it.
	DefaultBaseURL = "https://www.googleapis.com/webfonts/v1/webfonts?capability=VF&fields=items(category%2Cfamily%2ClastModified%2Csubsets%2Cvariants%2Cversion%2Caxes)&key="

	// DefaultOutputPath is where the dataset is written.
	DefaultOutputPath = "data/variable-response.json"
)

// Fetcher runs the fetch-transform-persist routine. Construct it with New.
type Fetcher struct {
	client     *http.Client
	baseURL    string
	outputPath string
	userAgent  string
	classifier icons.Classifier
	logger     *zap.Logger
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithClient sets the HTTP client (default: one with cfg.Timeout).
func WithClient(c *http.Client) Option { return func(f *Fetcher) { f.client = c } }

// WithClassifier sets the icon-font classifier (default: icons.Default()).
func WithClassifier(c icons.Classifier) Option { return func(f *Fetcher) { f.classifier = c } }

// WithLogger sets the logger (default: no-op).
func WithLogger(l *zap.Logger) Option { return func(f *Fetcher) { f.logger = l } }

// New returns a Fetcher for cfg. Empty BaseURL and OutputPath fall back to
// DefaultBaseURL and DefaultOutputPath.
func New(cfg types.VariableConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL:    cfg.BaseURL,
		outputPath: cfg.OutputPath,
		userAgent:  cfg.UserAgent,
		classifier: icons.Default(),
		logger:     zap.NewNop(),
	}
	if f.baseURL == "" {
		f.baseURL = DefaultBaseURL
	}
	if f.outputPath == "" {
		f.outputPath = DefaultOutputPath
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{Timeout: cfg.Timeout}
	}
	return f
}

// OutputPath returns the file the Fetcher writes.
func (f *Fetcher) OutputPath() string { return f.outputPath }

// Fetch downloads the variable-font list using key and writes the dataset.
// An empty key fails with ErrMissingCredential before any request is made.
// Every other failure is returned as a *FetchError wrapping the cause.
func (f *Fetcher) Fetch(ctx context.Context, key string) ([]types.VariableFont, error) {
	if key == "" {
		return nil, ErrMissingCredential
	}

	fonts, err := f.FetchURL(ctx, f.baseURL+key)
	if err != nil {
		f.logger.Debug("variable fetch failed", zap.Stringer("kind", Classify(err)), zap.Error(err))
		return nil, &FetchError{Err: err}
	}

	f.logger.Info("Successful Google Font API fetch (Variable fonts).",
		zap.Int("families", len(fonts)),
		zap.String("path", f.outputPath))
	return fonts, nil
}

// FetchURL performs the GET against url, transforms the response and
// overwrites the output file. Nothing is written unless every earlier
// step succeeds.
func (f *Fetcher) FetchURL(ctx context.Context, url string) ([]types.VariableFont, error) {
	resp, err := httputil.Get(ctx, f.client, url, f.userAgent)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body types.SourceResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&body); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Err: errors.New("unexpected data after JSON body")}
	}
	if body.Items == nil {
		return nil, &ParseError{Err: errors.New(`missing "items" array`)}
	}
	if err := validate(body.Items); err != nil {
		return nil, &ParseError{Err: err}
	}
	f.logger.Debug("API response decoded", zap.Int("items", len(body.Items)))

	fonts := Transform(body.Items, f.classifier)

	data, err := jsonfmt.Marshal(fonts)
	if err != nil {
		return nil, fmt.Errorf("encoding dataset: %w", err)
	}
	if err := writeFileAtomic(f.outputPath, data); err != nil {
		return nil, &WriteError{Path: f.outputPath, Err: err}
	}
	return fonts, nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partial file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
