package hcl_adapter

import (
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// toScalar converts a known, non-null primitive cty.Value into the Go value
// stored in node content. Whole numbers that fit become int64, other
// numbers float64. Anything else reports false.
func toScalar(v cty.Value) (any, bool) {
	if v.IsNull() || !v.IsKnown() {
		return nil, false
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), true
	case cty.Bool:
		return v.True(), true
	case cty.Number:
		var i int64
		if err := gocty.FromCtyValue(v, &i); err == nil {
			return i, true
		}
		var f float64
		if err := gocty.FromCtyValue(v, &f); err == nil {
			return f, true
		}
	}
	return nil, false
}
