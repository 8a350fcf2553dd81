// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package icons decides whether a font family is an icon font. Icon fonts
// render glyphs rather than text and are excluded from generated datasets.
package icons

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Classifier reports whether family is an icon font.
type Classifier interface {
	IsIconFont(family string) bool
}

// Func adapts a plain predicate to Classifier.
type Func func(family string) bool

// IsIconFont calls f(family).
func (f Func) IsIconFont(family string) bool { return f(family) }

// List matches families exactly or by substring.
type List struct {
	// Families are matched exactly.
	Families []string `yaml:"families"`
	// Contains are matched as substrings of the family name.
	Contains []string `yaml:"contains"`
}

// Default covers the icon families Google Fonts serves.
func Default() *List {
	return &List{Contains: []string{"Material Icons", "Material Symbols"}}
}

// IsIconFont implements Classifier.
func (l *List) IsIconFont(family string) bool {
	for _, f := range l.Families {
		if f == family {
			return true
		}
	}
	for _, s := range l.Contains {
		if s != "" && strings.Contains(family, s) {
			return true
		}
	}
	return false
}

// LoadList reads a YAML list such as:
//
//	families: [Noto Emoji]
//	contains: [Material Icons, Material Symbols]
//
// An empty path or missing file yields Default.
func LoadList(path string) (*List, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading icon list %s: %w", path, err)
	}

	var l List
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing icon list %s: %w", path, err)
	}
	return &l, nil
}
