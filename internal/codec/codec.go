// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package codec reads record documents for the CLI and writes pluck results
// in the supported output formats. JSON input is accepted as a subset of
// YAML.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pluck/pkg/pluck"
	"github.com/pdiddy/pluck/pkg/types"
)

// DecodeRecords reads a YAML or JSON sequence of mappings. An empty document
// yields no records. A null entry becomes an empty record.
func DecodeRecords(r io.Reader) ([]map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var records []map[string]any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing records: expected a sequence of mappings: %w", err)
	}
	if records == nil {
		records = []map[string]any{}
	}
	return records, nil
}

// ParseFormat validates an output format name.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(s); f {
	case types.OutputJSON, types.OutputYAML, types.OutputText, types.OutputSpew:
		return f, nil
	case "":
		return types.OutputJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q: use json, yaml, text, or spew", s)
	}
}

// Encode writes res to w in the given format. Field order always follows the
// selector, including in YAML and JSON mappings.
func Encode(w io.Writer, res pluck.Result, format types.OutputFormat) error {
	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Value())
	case types.OutputYAML:
		node, err := toNode(res.Value())
		if err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case types.OutputText:
		return encodeText(w, res)
	case types.OutputSpew:
		spew.Fdump(w, res.Value())
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// encodeText prints strings raw, lists one value per line, and falls back to
// JSON for shapes that have no line-oriented form.
func encodeText(w io.Writer, res pluck.Result) error {
	var lines []string
	switch res.Kind() {
	case pluck.KindJoined:
		lines = []string{res.Joined()}
	case pluck.KindValues:
		for _, v := range res.Values() {
			lines = append(lines, textValue(v))
		}
	case pluck.KindJoinedNestedArrays:
		lines = res.JoinedNestedArrays()
	case pluck.KindJoinedFieldArrays:
		for field, joined := range res.JoinedFieldArrays().All() {
			lines = append(lines, field+": "+joined)
		}
	default:
		return Encode(w, res, types.OutputJSON)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func textValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

type entrier interface {
	Entries() []pluck.Entry
}

// toNode builds a YAML node tree, keeping pluck.Fields in field order.
func toNode(v any) (*yaml.Node, error) {
	if e, ok := v.(entrier); ok {
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, entry := range e.Entries() {
			val, err := toNode(entry.Value)
			if err != nil {
				return nil, err
			}
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Field}
			node.Content = append(node.Content, key, val)
		}
		return node, nil
	}

	if v != nil {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for i := 0; i < rv.Len(); i++ {
				item, err := toNode(rv.Index(i).Interface())
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			return node, nil
		}
	}

	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding value %v: %w", v, err)
	}
	return node, nil
}
