// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceResponse is the body returned by the Google Fonts Developer API
// when queried with capability=VF. Items is nil when the field is missing
// or null, and empty for "items": [].
type SourceResponse struct {
	Items []SourceFont `json:"items"`
}

// SourceFont is one family as reported by the API. Only the fields the
// generator reads are declared; the rest of the payload is ignored.
type SourceFont struct {
	Family string       `json:"family"`
	Axes   []SourceAxis `json:"axes,omitempty"`
}

// SourceAxis is a variable axis range from the API. Start and End are the
// numeric bounds of the axis (e.g. 100 and 900 for wght); they are nil when
// the API omits them or sends null.
type SourceAxis struct {
	Tag   string   `json:"tag"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
}

// AxisRange describes one axis of a generated record. All values are
// strings to stay compatible with data produced before the API exposed
// axes directly.
type AxisRange struct {
	Min     string `json:"min" yaml:"min"`
	Max     string `json:"max" yaml:"max"`
	Step    string `json:"step" yaml:"step"`
	Default string `json:"default" yaml:"default"`
}

// VariableFont is one record of data/variable-response.json.
type VariableFont struct {
	// Family is the display name, e.g. "Roboto Flex".
	Family string `json:"family" yaml:"family"`

	// ID is the family slug, e.g. "roboto-flex".
	ID string `json:"id" yaml:"id"`

	// Axes maps the axis tag (wght, wdth, opsz...) to its range.
	Axes map[string]AxisRange `json:"axes" yaml:"axes"`
}
