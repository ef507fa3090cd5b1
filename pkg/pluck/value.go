// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// isAbsent reports whether a field holds no value: the key was missing, or
// the stored value is nil (directly or as a nil pointer, map, slice, func,
// chan, or interface).
func isAbsent(v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// stringify renders v the way a joiner sees it. Absent values become the
// empty string.
func stringify(v any) string {
	if isAbsent(v, true) {
		return ""
	}
	v = indirect(v)
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// indirect follows non-nil pointers down to a value, stopping early at
// anything that knows how to print itself.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		if _, ok := rv.Interface().(fmt.Stringer); ok {
			break
		}
		if _, ok := rv.Interface().(error); ok {
			break
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func joinValues(values []any, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = stringify(v)
	}
	return strings.Join(parts, sep)
}

// equal is the comparison used by Options.Unique.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
