// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package variable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/fontgen/internal/icons"
	"github.com/pdiddy/fontgen/pkg/types"
)

const (
	axisStep    = "1"
	axisDefault = "500"
)

// Transform reshapes API items into output records. Items must have passed
// validate, so every axis has both bounds. Items without axes
// and icon fonts are dropped; the remaining items keep their order. The
// result is never nil so an empty dataset serializes as [].
func Transform(items []types.SourceFont, classifier icons.Classifier) []types.VariableFont {
	fonts := make([]types.VariableFont, 0, len(items))
	for _, item := range items {
		if len(item.Axes) == 0 || classifier.IsIconFont(item.Family) {
			continue
		}

		axes := make(map[string]types.AxisRange, len(item.Axes))
		for _, a := range item.Axes {
			axes[a.Tag] = types.AxisRange{
				Min:     formatNumber(*a.Start),
				Max:     formatNumber(*a.End),
				Step:    axisStep,
				Default: axisDefault,
			}
		}

		fonts = append(fonts, types.VariableFont{
			Family: item.Family,
			ID:     Slug(item.Family),
			Axes:   axes,
		})
	}
	return fonts
}

// Slug lowercases family and replaces each whitespace character with '-'.
// "Open Sans" becomes "open-sans". Whitespace is the ECMAScript set used
// by existing dataset ids: it includes U+FEFF but not U+0085.
func Slug(family string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if isSpace(r) {
			return '-'
		}
		return r
	}, family))
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00a0', '\u1680',
		'\u2028', '\u2029', '\u202f', '\u205f', '\u3000', '\ufeff':
		return true
	}
	return r >= '\u2000' && r <= '\u200a'
}

// formatNumber returns the plain decimal form of f: 100 → "100",
// 0.5 → "0.5", -12.25 → "-12.25". Exponent notation is never used, so
// 1e21 renders as "1000000000000000000000" and 1e-7 as "0.0000001".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// validate checks the decoded items beyond what decoding enforces.
func validate(items []types.SourceFont) error {
	for i, item := range items {
		if item.Family == "" {
			return fmt.Errorf("items[%d]: empty family", i)
		}
		for j, a := range item.Axes {
			if a.Tag == "" {
				return fmt.Errorf("items[%d] (%s): axes[%d]: empty tag", i, item.Family, j)
			}
			if a.Start == nil || a.End == nil {
				return fmt.Errorf("items[%d] (%s): axes[%d]: missing start/end", i, item.Family, j)
			}
		}
	}
	return nil
}
