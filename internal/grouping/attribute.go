package grouping

import (
	"math"
	"reflect"
	"sort"
)

// Attribute is a single flat attribute as reported by a device or artifact.
type Attribute struct {
	Key   string
	Value any
}

// Attributes is an ordered attribute map. Order decides which node and
// property is seen first, and therefore the order of the grouped output.
type Attributes []Attribute

// FromMap converts an unordered Go map into Attributes sorted by key.
func FromMap(m map[string]any) Attributes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make(Attributes, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Attribute{Key: k, Value: m[k]})
	}
	return attrs
}

// IsScalar reports whether v is a value that can be placed into node content:
// a string, a bool, an integer, or a finite floating point number. NaN and
// infinities have no JSON encoding and are not scalars.
func IsScalar(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return false
	}
}
