// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

// Config is the run-time description of a pluck: the per-value Options plus
// the output shape.
type Config[V any] struct {
	Options[V]

	// Mode selects the multi-field shape. It must be ModeDefault for a
	// single-field selector.
	Mode Mode

	// Joiner, when non-empty, joins each value list into a string. It cannot
	// be combined with ModeDefault on a multi-field selector.
	Joiner string
}

// Kind identifies the shape held by a Result.
type Kind int

const (
	KindValues Kind = iota + 1
	KindJoined
	KindRows
	KindFieldArrays
	KindJoinedFieldArrays
	KindNestedArrays
	KindJoinedNestedArrays
)

var kindNames = map[Kind]string{
	KindValues:             "values",
	KindJoined:             "joined",
	KindRows:               "rows",
	KindFieldArrays:        "field-arrays",
	KindJoinedFieldArrays:  "joined-field-arrays",
	KindNestedArrays:       "nested-arrays",
	KindJoinedNestedArrays: "joined-nested-arrays",
}

// String returns the kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Result holds the output of Pluck. Exactly one accessor, the one matching
// Kind, returns data; the others return their zero value.
type Result struct {
	kind         Kind
	values       []any
	str          string
	rows         []Fields[any]
	fieldArrays  Fields[[]any]
	joinedFields Fields[string]
	nested       [][]any
	joinedNested []string
}

// Kind reports which shape the result holds.
func (r Result) Kind() Kind { return r.kind }

// Typed accessors. Each returns data only when Kind matches.

func (r Result) Values() []any { return r.values }

func (r Result) Joined() string { return r.str }

func (r Result) Rows() []Fields[any] { return r.rows }

func (r Result) FieldArrays() Fields[[]any] { return r.fieldArrays }

func (r Result) JoinedFieldArrays() Fields[string] { return r.joinedFields }

func (r Result) NestedArrays() [][]any { return r.nested }

func (r Result) JoinedNestedArrays() []string { return r.joinedNested }

// Value returns the payload as a plain value, suitable for encoding.
func (r Result) Value() any {
	switch r.kind {
	case KindValues:
		return r.values
	case KindJoined:
		return r.str
	case KindRows:
		return r.rows
	case KindFieldArrays:
		return r.fieldArrays
	case KindJoinedFieldArrays:
		return r.joinedFields
	case KindNestedArrays:
		return r.nested
	case KindJoinedNestedArrays:
		return r.joinedNested
	}
	return nil
}

// Resolve validates sel and cfg together and returns the shape Pluck would
// produce. No records are read.
func Resolve[V any](sel Selector, cfg Config[V]) (Kind, error) {
	mode, err := ParseMode(string(cfg.Mode))
	if err != nil {
		return 0, err
	}
	joined := cfg.Joiner != ""

	if !sel.multiple {
		if len(sel.fields) != 1 {
			return 0, configErr("selector", "single-field selector must name exactly one field")
		}
		if mode != ModeDefault {
			return 0, configErr("mode", "%s requires a multi-field selector", mode)
		}
		if joined {
			return KindJoined, nil
		}
		return KindValues, nil
	}

	if err := validateFields(sel.fields, mode == ModeNestedArray); err != nil {
		return 0, err
	}
	switch mode {
	case ModeFieldArray:
		if joined {
			return KindJoinedFieldArrays, nil
		}
		return KindFieldArrays, nil
	case ModeNestedArray:
		if joined {
			return KindJoinedNestedArrays, nil
		}
		return KindNestedArrays, nil
	default:
		if joined {
			return 0, configErr("joiner", "cannot join rows in default mode: use field-array or nested-array")
		}
		return KindRows, nil
	}
}

// Pluck extracts sel from records according to cfg. The configuration is
// checked before any record is read; a rejected configuration returns an
// error matching ErrInvalidConfig and no partial output.
func Pluck[V any](records []map[string]V, sel Selector, cfg Config[V]) (Result, error) {
	kind, err := Resolve(sel, cfg)
	if err != nil {
		return Result{}, err
	}

	res := Result{kind: kind}
	fields, opts := sel.fields, cfg.Options
	switch kind {
	case KindValues:
		res.values = Values(records, fields[0], opts)
	case KindJoined:
		res.str = Join(records, fields[0], cfg.Joiner, opts)
	case KindRows:
		res.rows, err = Rows(records, fields, opts)
	case KindFieldArrays:
		res.fieldArrays, err = FieldArrays(records, fields, opts)
	case KindJoinedFieldArrays:
		res.joinedFields, err = JoinFieldArrays(records, fields, cfg.Joiner, opts)
	case KindNestedArrays:
		res.nested, err = NestedArrays(records, fields, opts)
	case KindJoinedNestedArrays:
		res.joinedNested, err = JoinNestedArrays(records, fields, cfg.Joiner, opts)
	}
	if err != nil {
		return Result{}, err
	}
	return res, nil
}
