package attrgroup

import (
	"github.com/vk/attrgroup/internal/grouping"
)

type (
	// Attribute is a single flat attribute.
	Attribute = grouping.Attribute
	// Attributes is an ordered attribute map.
	Attributes = grouping.Attributes
	// Node is one titled group of the tree.
	Node = grouping.Node
	// Tree maps top-level titles to nodes in first-occurrence order.
	Tree = grouping.Tree
	// Rules configures known prefixes, containers and reserved keys.
	Rules = grouping.Rules
	// Prefix maps a known key prefix to a display title.
	Prefix = grouping.Prefix
	// Grouper groups attributes with a compiled rule table.
	Grouper = grouping.Grouper
)

// Group groups attrs with the default rules.
func Group(attrs Attributes) Tree {
	return grouping.Group(attrs)
}

// GroupSoftware groups only the software attributes in attrs.
func GroupSoftware(attrs Attributes) Tree {
	return grouping.GroupSoftware(attrs)
}

// Partition splits attrs into software and generic device attributes.
func Partition(attrs Attributes) (software, other Attributes) {
	return grouping.Partition(attrs)
}

// FromMap converts a Go map into Attributes sorted by key.
func FromMap(m map[string]any) Attributes {
	return grouping.FromMap(m)
}

// DefaultRules returns the built-in rule table.
func DefaultRules() Rules {
	return grouping.DefaultRules()
}

// NewGrouper validates and compiles rules.
func NewGrouper(rules Rules) (*Grouper, error) {
	return grouping.NewGrouper(rules)
}
