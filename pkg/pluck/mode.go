// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

import "strings"

// Mode selects how a multi-field pluck is assembled.
type Mode string

const (
	// ModeDefault produces one output row per input record.
	ModeDefault Mode = ""

	// ModeFieldArray produces one value list per field, keyed by field name.
	ModeFieldArray Mode = "field-array"

	// ModeNestedArray produces one value list per field, positionally aligned
	// with the selector.
	ModeNestedArray Mode = "nested-array"
)

// ParseMode converts s into a Mode. The empty string and "default" both map
// to ModeDefault.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeDefault, "default":
		return ModeDefault, nil
	case ModeFieldArray, ModeNestedArray:
		return m, nil
	default:
		return "", configErr("mode", "unknown mode %q: use default, field-array, or nested-array", s)
	}
}

// String returns the mode name, "default" for ModeDefault.
func (m Mode) String() string {
	if m == ModeDefault {
		return "default"
	}
	return string(m)
}

// Selector names the field or fields to extract. The arity is explicit: a
// FieldList with a single name is still a multi-field selector.
type Selector struct {
	fields   []string
	multiple bool
}

// Field selects a single field.
func Field(name string) Selector {
	return Selector{fields: []string{name}}
}

// FieldList selects several fields. Order is significant and is preserved in
// every output shape.
func FieldList(names ...string) Selector {
	return Selector{fields: append([]string(nil), names...), multiple: true}
}

// Multiple reports whether s is a multi-field selector.
func (s Selector) Multiple() bool { return s.multiple }

// Fields returns a copy of the selected field names.
func (s Selector) Fields() []string {
	return append([]string(nil), s.fields...)
}

// validateFields rejects selectors that no keyed or positional output can
// represent. Duplicates are only allowed when the output is positional.
func validateFields(fields []string, allowDuplicates bool) error {
	if len(fields) == 0 {
		return configErr("selector", "field list must not be empty")
	}
	if allowDuplicates {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			return configErr("selector", "field %q selected more than once", f)
		}
		seen[f] = struct{}{}
	}
	return nil
}
