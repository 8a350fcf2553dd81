// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package jsonfmt

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type axis struct {
	Min     string `json:"min"`
	Max     string `json:"max"`
	Step    string `json:"step"`
	Default string `json:"default"`
}

type font struct {
	Family string          `json:"family"`
	ID     string          `json:"id"`
	Axes   map[string]axis `json:"axes"`
}

func TestMarshalWidth(t *testing.T) {
	tests := []struct {
		name  string
		v     any
		width int
		want  string
	}{
		{
			name:  "empty slice",
			v:     []font{},
			width: DefaultWidth,
			want:  `[]`,
		},
		{
			name:  "empty map",
			v:     map[string]int{},
			width: DefaultWidth,
			want:  `{}`,
		},
		{
			name:  "scalar",
			v:     "a<b&c",
			width: DefaultWidth,
			want:  `"a<b&c"`,
		},
		{
			name:  "map keys sorted and spaced",
			v:     map[string]int{"b": 2, "a": 1},
			width: DefaultWidth,
			want:  `{"a": 1, "b": 2}`,
		},
		{
			name:  "array expands when too wide",
			v:     []int{1, 2, 3, 4, 5},
			width: 10,
			want:  "[\n  1,\n  2,\n  3,\n  4,\n  5\n]",
		},
		{
			name:  "empty nested container stays inline",
			v:     map[string][]int{"a": {}},
			width: 3,
			want:  "{\n  \"a\": []\n}",
		},
		{
			name: "variable font record",
			v: []font{{
				Family: "Roboto Flex",
				ID:     "roboto-flex",
				Axes:   map[string]axis{"wght": {Min: "100", Max: "1000", Step: "1", Default: "500"}},
			}},
			width: DefaultWidth,
			want: `[
  {
    "family": "Roboto Flex",
    "id": "roboto-flex",
    "axes": {
      "wght": {"min": "100", "max": "1000", "step": "1", "default": "500"}
    }
  }
]`,
		},
		{
			name: "short record fits on one line",
			v: []font{{
				Family: "A",
				ID:     "a",
				Axes:   map[string]axis{},
			}},
			width: DefaultWidth,
			want:  `[{"family": "A", "id": "a", "axes": {}}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalWidth(tt.v, tt.width)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("MarshalWidth() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalRoundTripsValues(t *testing.T) {
	in := map[string]any{
		"n":      1.5,
		"nested": []any{true, nil, "x, y: z", map[string]any{"k": []int{1}}},
	}
	out, err := MarshalWidth(in, 12)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(out, &back))

	var want map[string]any
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &want))

	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("value changed by formatting (-want +got):\n%s", diff)
	}
}

func TestMarshalUnsupportedValue(t *testing.T) {
	_, err := Marshal(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
}
