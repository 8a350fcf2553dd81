package types

import "time"

// HTTPConfig holds shared HTTP settings used by commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "fontgen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// VariableConfig holds settings for the variable-font generator.
type VariableConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API endpoint; the API key is appended verbatim.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// OutputPath is the JSON file that receives the generated records
	// (default data/variable-response.json). It is overwritten on each run.
	OutputPath string `json:"output" yaml:"output"`

	// IconsFile is an optional YAML file listing icon-font families to exclude.
	IconsFile string `json:"icons,omitempty" yaml:"icons,omitempty"`

	// CatalogPath is an optional SQLite database indexed after a successful run.
	CatalogPath string `json:"catalog,omitempty" yaml:"catalog,omitempty"`
}
