// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile turns a stored types.Profile into the selector and
// configuration the pluck package runs with.
package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/pluck/pkg/pluck"
	"github.com/pdiddy/pluck/pkg/types"
)

// Resolve builds the selector and configuration described by p and checks
// them together, so a bad profile fails before any input is read.
func Resolve(p types.Profile) (pluck.Selector, pluck.Config[any], error) {
	var cfg pluck.Config[any]
	if len(p.Fields) == 0 {
		return pluck.Selector{}, cfg, fmt.Errorf("profile has no fields: %w", pluck.ErrInvalidConfig)
	}

	sel := pluck.Field(p.Fields[0])
	if p.Multi || len(p.Fields) > 1 {
		sel = pluck.FieldList(p.Fields...)
	}

	mode, err := pluck.ParseMode(p.Mode)
	if err != nil {
		return pluck.Selector{}, cfg, err
	}

	templates, err := ParseTemplates(p.Formatters)
	if err != nil {
		return pluck.Selector{}, cfg, err
	}
	formatter, err := Formatter(templates)
	if err != nil {
		return pluck.Selector{}, cfg, err
	}

	cfg = pluck.Config[any]{
		Options: pluck.Options[any]{
			Formatter: formatter,
			Unique:    p.Unique,
			NonEmpty:  p.NonEmpty,
		},
		Mode:   mode,
		Joiner: p.Joiner,
	}
	if _, err := pluck.Resolve(sel, cfg); err != nil {
		return pluck.Selector{}, pluck.Config[any]{}, err
	}
	return sel, cfg, nil
}

// Formatter compiles field templates into a single formatter. Each template
// is a printf format with exactly one verb. A field without its own template
// uses the types.AnyField template, or passes through unchanged. Formatter
// returns nil when templates is empty.
func Formatter(templates map[string]string) (pluck.Formatter[any], error) {
	if len(templates) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := checkTemplate(templates[name]); err != nil {
			return nil, fmt.Errorf("formatter for %q: %w", name, err)
		}
	}

	compiled := make(map[string]string, len(templates))
	for k, v := range templates {
		compiled[k] = v
	}
	fallback, hasFallback := compiled[types.AnyField]

	return func(value any, field string) any {
		tmpl, ok := compiled[field]
		if !ok {
			if !hasFallback {
				return value
			}
			tmpl = fallback
		}
		return fmt.Sprintf(tmpl, value)
	}, nil
}

// templateFaults are the markers fmt leaves when a format does not consume
// exactly one argument.
var templateFaults = []string{"%!(EXTRA", "(MISSING)", "%!(NOVERB)"}

// checkTemplate rejects templates that do not consume exactly one argument.
// Verb and type mismatches are left to fmt, since the value type is only
// known per record.
func checkTemplate(tmpl string) error {
	out := fmt.Sprintf(tmpl, "probe")
	for _, fault := range templateFaults {
		if !strings.Contains(out, fault) {
			continue
		}
		return &pluck.ConfigError{
			Option: "formatter",
			Reason: fmt.Sprintf("template %q must contain exactly one verb", tmpl),
		}
	}
	return nil
}

// ParseTemplates parses "field=template" pairs as given on the command line.
func ParseTemplates(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, tmpl, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, &pluck.ConfigError{
				Option: "formatter",
				Reason: fmt.Sprintf("expected field=template, got %q", pair),
			}
		}
		out[field] = tmpl
	}
	return out, nil
}
