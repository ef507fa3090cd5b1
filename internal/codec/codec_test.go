// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pluck/pkg/pluck"
	"github.com/pdiddy/pluck/pkg/types"
)

const peopleYAML = `
- name: Tanya
  age: 24
- name: Dewi
  age: 13
  address: Sumatra 31C
- name: Indah
  age: 42
  address: null
- name: Sonya
  age: 22
  address: Raya Menur
`

func mustPluck(t *testing.T, sel pluck.Selector, cfg pluck.Config[any]) pluck.Result {
	t.Helper()
	records, err := DecodeRecords(strings.NewReader(peopleYAML))
	require.NoError(t, err)
	res, err := pluck.Pluck(records, sel, cfg)
	require.NoError(t, err)
	return res
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []map[string]any
	}{
		{
			name:  "yaml",
			input: peopleYAML,
			want: []map[string]any{
				{"name": "Tanya", "age": 24},
				{"name": "Dewi", "age": 13, "address": "Sumatra 31C"},
				{"name": "Indah", "age": 42, "address": nil},
				{"name": "Sonya", "age": 22, "address": "Raya Menur"},
			},
		},
		{
			name:  "json",
			input: `[{"name": "Tanya", "score": 1.5}, {"name": null}]`,
			want:  []map[string]any{{"name": "Tanya", "score": 1.5}, {"name": nil}},
		},
		{
			name:  "empty document",
			input: "",
			want:  []map[string]any{},
		},
		{
			name:  "null entry",
			input: "- null\n- {a: 1}\n",
			want:  []map[string]any{nil, {"a": 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecords(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRecordsRejectsNonSequence(t *testing.T) {
	for _, input := range []string{"name: Tanya", "- 1\n- 2\n"} {
		_, err := DecodeRecords(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "yaml", "text", "spew"} {
		got, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, types.OutputFormat(s), got)
	}
	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, types.OutputJSON, got)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncodeJSONKeepsFieldOrder(t *testing.T) {
	res := mustPluck(t, pluck.FieldList("age", "address"), pluck.Config[any]{
		Options: pluck.Options[any]{NonEmpty: true},
		Mode:    pluck.ModeFieldArray,
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, types.OutputJSON))

	out := buf.String()
	assert.Less(t, strings.Index(out, `"age"`), strings.Index(out, `"address"`))

	var decoded map[string][]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []any{"Sumatra 31C", "Raya Menur"}, decoded["address"])
	assert.Len(t, decoded["age"], 4)
}

func TestEncodeYAMLKeepsFieldOrder(t *testing.T) {
	res := mustPluck(t, pluck.FieldList("name", "address"), pluck.Config[any]{
		Options: pluck.Options[any]{NonEmpty: true},
	})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, types.OutputYAML))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	rows := doc.Content[0]
	require.Equal(t, yaml.SequenceNode, rows.Kind)
	require.Len(t, rows.Content, 4)

	first := rows.Content[0]
	assert.Equal(t, []string{"name", "Tanya"}, scalars(first))
	second := rows.Content[1]
	assert.Equal(t, []string{"name", "Dewi", "address", "Sumatra 31C"}, scalars(second))
}

func TestEncodeYAMLNestedArrays(t *testing.T) {
	res := mustPluck(t, pluck.FieldList("address", "age"), pluck.Config[any]{Mode: pluck.ModeNestedArray})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, types.OutputYAML))

	var got [][]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, [][]any{{nil, "Sumatra 31C", nil, "Raya Menur"}, {24, 13, 42, 22}}, got)
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		name string
		sel  pluck.Selector
		cfg  pluck.Config[any]
		want string
	}{
		{
			name: "joined",
			sel:  pluck.Field("address"),
			cfg:  pluck.Config[any]{Joiner: ", "},
			want: ", Sumatra 31C, , Raya Menur\n",
		},
		{
			name: "values one per line",
			sel:  pluck.Field("name"),
			want: "Tanya\nDewi\nIndah\nSonya\n",
		},
		{
			name: "joined field arrays",
			sel:  pluck.FieldList("age", "name"),
			cfg:  pluck.Config[any]{Mode: pluck.ModeFieldArray, Joiner: "|"},
			want: "age: 24|13|42|22\nname: Tanya|Dewi|Indah|Sonya\n",
		},
		{
			name: "joined nested arrays",
			sel:  pluck.FieldList("name", "age"),
			cfg:  pluck.Config[any]{Mode: pluck.ModeNestedArray, Joiner: " "},
			want: "Tanya Dewi Indah Sonya\n24 13 42 22\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, mustPluck(t, tt.sel, tt.cfg), types.OutputText))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestEncodeTextFallsBackToJSON(t *testing.T) {
	res := mustPluck(t, pluck.FieldList("age"), pluck.Config[any]{})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, types.OutputText))
	assert.JSONEq(t, `[{"age":24},{"age":13},{"age":42},{"age":22}]`, buf.String())
}

func TestEncodeSpew(t *testing.T) {
	res := mustPluck(t, pluck.Field("name"), pluck.Config[any]{Joiner: ","})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, res, types.OutputSpew))
	assert.Contains(t, buf.String(), `"Tanya,Dewi,Indah,Sonya"`)
}

func TestEncodeUnknownFormat(t *testing.T) {
	res := mustPluck(t, pluck.Field("name"), pluck.Config[any]{})
	assert.Error(t, Encode(&bytes.Buffer{}, res, "xml"))
}

func scalars(n *yaml.Node) []string {
	var out []string
	for _, c := range n.Content {
		out = append(out, c.Value)
	}
	return out
}
