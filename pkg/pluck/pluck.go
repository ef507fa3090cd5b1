// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pluck extracts named fields from a sequence of records and
// reassembles the values into one of several shapes.
//
// Each shape has its own operation so callers get a precise Go type back:
//
//	Values            single field          []any
//	Join              single field, joined  string
//	Rows              several fields        []Fields[any]
//	FieldArrays       several fields        Fields[[]any]
//	JoinFieldArrays   several fields        Fields[string]
//	NestedArrays      several fields        [][]any
//	JoinNestedArrays  several fields        []string
//
// Pluck is the configuration-driven entry point used when the shape is only
// known at run time (for example from a config file).
//
// Every value pulled from a record goes through the same pipeline: the
// uniqueness check (Options.Unique), the non-empty check (Options.NonEmpty),
// the formatter (Options.Formatter), then emission into the output. Inputs are
// never modified.
package pluck

// Formatter transforms one extracted value. field is the name the value was
// read from.
type Formatter[V any] func(value V, field string) any

// Options control the per-value pipeline.
type Options[V any] struct {
	// Formatter, when set, replaces each emitted value with its result.
	Formatter Formatter[V]

	// Unique skips a value when an equal raw value was already emitted into
	// the same output list. Raw values are compared, never formatted ones.
	Unique bool

	// NonEmpty drops values for missing keys and nil values.
	NonEmpty bool
}

// collector accumulates the surviving values for one output list.
type collector[V any] struct {
	opts  *Options[V]
	field string
	seen  []any
	out   []any
}

func newCollector[V any](opts *Options[V], field string, capacity int) *collector[V] {
	return &collector[V]{opts: opts, field: field, out: make([]any, 0, capacity)}
}

func (c *collector[V]) add(v V, present bool) {
	raw := any(v)
	if c.opts.Unique {
		for _, s := range c.seen {
			if equal(s, raw) {
				return
			}
		}
	}
	if c.opts.NonEmpty && isAbsent(raw, present) {
		return
	}
	if c.opts.Unique {
		c.seen = append(c.seen, raw)
	}
	c.out = append(c.out, c.opts.format(v, c.field))
}

func (o *Options[V]) format(v V, field string) any {
	if o.Formatter != nil {
		return o.Formatter(v, field)
	}
	return v
}

// column runs the pipeline for one field over every record.
func column[V any](records []map[string]V, field string, opts *Options[V]) []any {
	c := newCollector(opts, field, len(records))
	for _, r := range records {
		v, ok := r[field]
		c.add(v, ok)
	}
	return c.out
}

// Values returns the value of field for each record, in record order.
func Values[V any](records []map[string]V, field string, opts Options[V]) []any {
	return column(records, field, &opts)
}

// Join is Values with the result concatenated using sep. Nil values join as
// empty strings.
func Join[V any](records []map[string]V, field, sep string, opts Options[V]) string {
	return joinValues(column(records, field, &opts), sep)
}

// Rows returns one row per record holding the selected fields in selector
// order. With NonEmpty set, absent fields are left out of the row rather than
// stored as nil. Unique has no effect: a row never holds a field twice.
func Rows[V any](records []map[string]V, fields []string, opts Options[V]) ([]Fields[any], error) {
	if err := validateFields(fields, false); err != nil {
		return nil, err
	}
	rows := make([]Fields[any], 0, len(records))
	for _, r := range records {
		row := newFields[any](len(fields))
		for _, f := range fields {
			v, ok := r[f]
			if opts.NonEmpty && isAbsent(any(v), ok) {
				continue
			}
			row.set(f, opts.format(v, f))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// FieldArrays returns, for each field, the list of its surviving values
// across all records.
func FieldArrays[V any](records []map[string]V, fields []string, opts Options[V]) (Fields[[]any], error) {
	if err := validateFields(fields, false); err != nil {
		return Fields[[]any]{}, err
	}
	out := newFields[[]any](len(fields))
	for _, f := range fields {
		out.set(f, column(records, f, &opts))
	}
	return out, nil
}

// JoinFieldArrays is FieldArrays with each list joined using sep.
func JoinFieldArrays[V any](records []map[string]V, fields []string, sep string, opts Options[V]) (Fields[string], error) {
	arrays, err := FieldArrays(records, fields, opts)
	if err != nil {
		return Fields[string]{}, err
	}
	out := newFields[string](arrays.Len())
	for f, values := range arrays.All() {
		out.set(f, joinValues(values, sep))
	}
	return out, nil
}

// NestedArrays returns one list per selected field, positionally aligned with
// fields. A field may be selected more than once.
func NestedArrays[V any](records []map[string]V, fields []string, opts Options[V]) ([][]any, error) {
	if err := validateFields(fields, true); err != nil {
		return nil, err
	}
	out := make([][]any, 0, len(fields))
	for _, f := range fields {
		out = append(out, column(records, f, &opts))
	}
	return out, nil
}

// JoinNestedArrays is NestedArrays with each list joined using sep.
func JoinNestedArrays[V any](records []map[string]V, fields []string, sep string, opts Options[V]) ([]string, error) {
	nested, err := NestedArrays(records, fields, opts)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(nested))
	for i, values := range nested {
		out[i] = joinValues(values, sep)
	}
	return out, nil
}
