package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/attrgroup/internal/grouping"
)

// DecodeAttributes reads an HCL attribute document. Keys come out in sorted
// order; values that are not strings, numbers or bools are skipped.
func DecodeAttributes(filename string, src []byte) (grouping.Attributes, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root attributesFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	val := root.Attributes
	if val.IsNull() || !val.IsKnown() {
		return grouping.Attributes{}, nil
	}
	ty := val.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil, fmt.Errorf("attributes in %s must be an object, got %s", filename, ty.FriendlyName())
	}

	attrs := grouping.Attributes{}
	for it := val.ElementIterator(); it.Next(); {
		k, v := it.Element()
		scalar, ok := toScalar(v)
		if !ok {
			continue
		}
		attrs = append(attrs, grouping.Attribute{Key: k.AsString(), Value: scalar})
	}
	return attrs, nil
}
