// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsonfmt renders JSON in a pretty but compact layout: containers
// that fit within the line width stay on one line, the rest are expanded
// one element per line with two-space indentation.
//
//	[
//	  {"family": "Roboto Flex", "id": "roboto-flex", "axes": {"wght": {...}}},
//	  ...
//	]
package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the maximum line length used by Marshal.
const DefaultWidth = 80

const indentUnit = "  "

// Marshal encodes v with encoding/json and renders it with DefaultWidth.
func Marshal(v any) ([]byte, error) {
	return MarshalWidth(v, DefaultWidth)
}

// MarshalWidth is Marshal with a custom line width. Object keys keep the
// order encoding/json produced (struct field order, sorted map keys).
// The result has no trailing newline.
func MarshalWidth(v any, width int) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	root, err := parse(dec)
	if err != nil {
		return nil, fmt.Errorf("re-reading encoded JSON: %w", err)
	}
	return []byte(render(root, "", 0, width)), nil
}

// node is a JSON value with object key order preserved.
type node struct {
	open  byte // '{', '[', or 0 for scalars
	raw   string
	keys  []string // encoded keys, objects only
	elems []*node
}

func parse(dec *json.Decoder) (*node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		n := &node{open: byte(t)}
		for dec.More() {
			if n.open == '{' {
				k, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := k.(string)
				if !ok {
					return nil, fmt.Errorf("unexpected object key %v", k)
				}
				n.keys = append(n.keys, encodeScalar(key))
			}
			child, err := parse(dec)
			if err != nil {
				return nil, err
			}
			n.elems = append(n.elems, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return n, nil
	case nil:
		return &node{raw: "null"}, nil
	case json.Number:
		return &node{raw: t.String()}, nil
	default:
		return &node{raw: encodeScalar(t)}, nil
	}
}

func encodeScalar(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Strings and bools always encode.
	_ = enc.Encode(v)
	return strings.TrimSuffix(buf.String(), "\n")
}

func closer(open byte) string {
	if open == '{' {
		return "}"
	}
	return "]"
}

// inline renders n on one line with a space after every ':' and ','.
func inline(n *node) string {
	if n.open == 0 {
		return n.raw
	}
	parts := make([]string, len(n.elems))
	for i, e := range n.elems {
		if n.open == '{' {
			parts[i] = n.keys[i] + ": " + inline(e)
		} else {
			parts[i] = inline(e)
		}
	}
	return string(n.open) + strings.Join(parts, ", ") + closer(n.open)
}

// render lays out n starting at the given indent. reserved counts the
// characters that must follow n on the same line (a key prefix or a comma).
func render(n *node, indent string, reserved, width int) string {
	s := inline(n)
	if utf8.RuneCountInString(s) <= width-len(indent)-reserved || len(n.elems) == 0 {
		return s
	}

	next := indent + indentUnit
	items := make([]string, len(n.elems))
	for i, e := range n.elems {
		comma := 1
		if i == len(n.elems)-1 {
			comma = 0
		}
		if n.open == '{' {
			prefix := n.keys[i] + ": "
			items[i] = prefix + render(e, next, utf8.RuneCountInString(prefix)+comma, width)
		} else {
			items[i] = render(e, next, comma, width)
		}
	}
	return string(n.open) + "\n" + next + strings.Join(items, ",\n"+next) + "\n" + indent + closer(n.open)
}
