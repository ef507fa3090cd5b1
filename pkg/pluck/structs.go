// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pluck

import (
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// StructTag is the struct tag FromStructs reads field names from. Untagged
// exported fields use their Go name.
const StructTag = "pluck"

// FromStructs converts a slice of structs, or pointers to structs, into
// records. A nil pointer becomes an empty record, so every field reads as
// absent. Nested structs become nested maps.
func FromStructs[S any](items []S) ([]map[string]any, error) {
	t := reflect.TypeFor[S]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("pluck: FromStructs needs struct elements, got %s", t)
	}

	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		rec := make(map[string]any)
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: StructTag,
			Result:  &rec,
		})
		if err != nil {
			return nil, fmt.Errorf("creating decoder: %w", err)
		}
		if err := dec.Decode(item); err != nil {
			return nil, fmt.Errorf("converting item %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
