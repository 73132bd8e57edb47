// Package input reads attribute documents into ordered grouping.Attributes.
//
// JSON and YAML documents are parsed with yaml.v3 into a node tree so that
// the document order of keys survives; HCL documents are handed to the
// hcl_adapter package. Two shapes are accepted: a flat mapping of dotted keys
// to scalars, and an inventory document whose `attributes` field is a list of
// `{name, value, scope}` entries.
//
// Numbers keep their decoded value only when it prints back as written, so a
// version such as `1.10` reaches the grouper as the string "1.10".
package input
