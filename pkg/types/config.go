// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration types read from pluck.yaml and
// shared between the CLI and its internal packages.
package types

// OutputFormat selects how a result is written to stdout.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
	OutputText OutputFormat = "text"
	OutputSpew OutputFormat = "spew"
)

// AnyField is the formatter key that applies to every field without its own
// template.
const AnyField = "*"

// Profile is a named, reusable pluck configuration.
type Profile struct {
	// Fields lists the fields to extract, in output order.
	Fields []string `json:"fields" yaml:"fields" mapstructure:"fields"`

	// Multi forces a multi-field selector even when Fields has one entry.
	Multi bool `json:"multi,omitempty" yaml:"multi,omitempty" mapstructure:"multi"`

	// Mode is default, field-array, or nested-array.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" mapstructure:"mode"`

	// Joiner joins each value list into a string when non-empty.
	Joiner string `json:"joiner,omitempty" yaml:"joiner,omitempty" mapstructure:"joiner"`

	// Unique drops repeated values within each output list.
	Unique bool `json:"unique,omitempty" yaml:"unique,omitempty" mapstructure:"unique"`

	// NonEmpty drops missing and null values.
	NonEmpty bool `json:"non_empty,omitempty" yaml:"non_empty,omitempty" mapstructure:"non_empty"`

	// Formatters holds "field=template" pairs. The field may be AnyField;
	// the template is a printf format with a single verb (e.g.
	// "address=Jl. %v"). Field names keep their case, unlike config keys.
	Formatters []string `json:"formatters,omitempty" yaml:"formatters,omitempty" mapstructure:"formatters"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Development switches to the human-readable console encoder.
	Development bool `json:"development" yaml:"development" mapstructure:"development"`
}

// Config is the full contents of pluck.yaml.
type Config struct {
	Output   OutputFormat       `json:"output" yaml:"output" mapstructure:"output"`
	Log      LoggingConfig      `json:"log" yaml:"log" mapstructure:"log"`
	Profiles map[string]Profile `json:"profiles" yaml:"profiles" mapstructure:"profiles"`
}
