// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pluck/pkg/pluck"
	"github.com/pdiddy/pluck/pkg/types"
)

func records() []map[string]any {
	return []map[string]any{
		{"address": nil, "age": 24},
		{"address": "Sumatra 31C", "age": 13},
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		profile  types.Profile
		multiple bool
		kind     pluck.Kind
	}{
		{"single field", types.Profile{Fields: []string{"age"}}, false, pluck.KindValues},
		{"single joined", types.Profile{Fields: []string{"age"}, Joiner: ","}, false, pluck.KindJoined},
		{"forced multi", types.Profile{Fields: []string{"age"}, Multi: true}, true, pluck.KindRows},
		{"rows", types.Profile{Fields: []string{"age", "address"}}, true, pluck.KindRows},
		{
			"field arrays",
			types.Profile{Fields: []string{"age", "address"}, Mode: "field-array", Joiner: ", "},
			true,
			pluck.KindJoinedFieldArrays,
		},
		{
			"nested arrays",
			types.Profile{Fields: []string{"age", "address"}, Mode: "nested-array"},
			true,
			pluck.KindNestedArrays,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, cfg, err := Resolve(tt.profile)
			require.NoError(t, err)
			assert.Equal(t, tt.multiple, sel.Multiple())
			assert.Equal(t, tt.profile.Fields, sel.Fields())

			kind, err := pluck.Resolve(sel, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestResolveCarriesOptions(t *testing.T) {
	sel, cfg, err := Resolve(types.Profile{
		Fields:     []string{"address", "age"},
		Mode:       "field-array",
		NonEmpty:   true,
		Unique:     true,
		Formatters: []string{"address=Jl. %v", types.AnyField + "=Umur: %v"},
	})
	require.NoError(t, err)
	assert.True(t, cfg.NonEmpty)
	assert.True(t, cfg.Unique)
	assert.Equal(t, pluck.ModeFieldArray, cfg.Mode)

	res, err := pluck.Pluck(records(), sel, cfg)
	require.NoError(t, err)
	assert.Equal(t, map[string][]any{
		"address": {"Jl. Sumatra 31C"},
		"age":     {"Umur: 24", "Umur: 13"},
	}, res.FieldArrays().Map())
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile types.Profile
	}{
		{"no fields", types.Profile{}},
		{"unknown mode", types.Profile{Fields: []string{"a", "b"}, Mode: "grid"}},
		{"mode on single field", types.Profile{Fields: []string{"a"}, Mode: "field-array"}},
		{"joined rows", types.Profile{Fields: []string{"a", "b"}, Joiner: ","}},
		{"bad template", types.Profile{Fields: []string{"a"}, Formatters: []string{"a=no verb"}}},
		{"bad pair", types.Profile{Fields: []string{"a"}, Formatters: []string{"Jl. %v"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Resolve(tt.profile)
			assert.ErrorIs(t, err, pluck.ErrInvalidConfig)
		})
	}
}

func TestFormatter(t *testing.T) {
	f, err := Formatter(map[string]string{"address": "Jl. %v", "age": "%03d"})
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "Jl. Raya Menur", f("Raya Menur", "address"))
	assert.Equal(t, "Jl. <nil>", f(nil, "address"))
	assert.Equal(t, "024", f(24, "age"))
	assert.Equal(t, "untouched", f("untouched", "name"))
}

func TestFormatterEmpty(t *testing.T) {
	f, err := Formatter(nil)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFormatterRejectsTemplates(t *testing.T) {
	for _, tmpl := range []string{"plain", "%v and %v", "100%"} {
		t.Run(tmpl, func(t *testing.T) {
			_, err := Formatter(map[string]string{"a": tmpl})
			assert.ErrorIs(t, err, pluck.ErrInvalidConfig)
		})
	}
}

func TestParseTemplates(t *testing.T) {
	got, err := ParseTemplates([]string{"address=Jl. %v", "*=%v!", "note=a=b %v"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"address": "Jl. %v", "*": "%v!", "note": "a=b %v"}, got)

	got, err = ParseTemplates(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseTemplates([]string{"=x"})
	assert.ErrorIs(t, err, pluck.ErrInvalidConfig)
	_, err = ParseTemplates([]string{"novalue"})
	assert.ErrorIs(t, err, pluck.ErrInvalidConfig)
}
