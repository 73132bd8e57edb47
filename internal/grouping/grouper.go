package grouping

import (
	"github.com/vk/attrgroup/internal/attrpath"
)

// Grouper builds attribute trees according to a fixed set of Rules.
type Grouper struct {
	rules      Rules
	reserved   map[string]struct{}
	containers map[string]struct{}
	prefixes   map[string]compiledPrefix
	shapes     []matcher
}

var defaultGrouper = MustNewGrouper(DefaultRules())

// NewGrouper validates rules and compiles them into lookup tables.
func NewGrouper(rules Rules) (*Grouper, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	g := &Grouper{
		rules:      rules,
		reserved:   toSet(rules.Reserved),
		containers: toSet(rules.Containers),
		prefixes:   make(map[string]compiledPrefix, len(rules.Prefixes)),
	}
	for _, p := range rules.Prefixes {
		g.prefixes[p.Path] = compiledPrefix{title: p.Title, leaves: toSet(p.Leaves)}
	}
	g.shapes = g.matchers()
	return g, nil
}

// MustNewGrouper is like NewGrouper but panics on invalid rules.
func MustNewGrouper(rules Rules) *Grouper {
	g, err := NewGrouper(rules)
	if err != nil {
		panic(err)
	}
	return g
}

// Rules returns the rules the grouper was built with.
func (g *Grouper) Rules() Rules {
	return g.rules
}

// Group groups attrs with the default rules.
func Group(attrs Attributes) Tree {
	return defaultGrouper.Group(attrs)
}

// Group builds a fresh tree from attrs. Attributes whose key or value does
// not fit any recognized shape are skipped.
func (g *Grouper) Group(attrs Attributes) Tree {
	tree := NewTree()
	for _, attr := range attrs {
		pl, ok := g.resolve(attr)
		if !ok || pl.dropped() {
			continue
		}

		node := tree.Node(pl.titles[0])
		for _, title := range pl.titles[1:] {
			node = node.Child(title)
		}
		node.Content.Set(pl.leaf, attr.Value)
	}
	return tree
}

// resolve runs the matchers in order and returns the first placement.
func (g *Grouper) resolve(attr Attribute) (placement, bool) {
	if !IsScalar(attr.Value) {
		return placement{}, false
	}
	p, err := attrpath.Parse(attr.Key)
	if err != nil {
		return placement{}, false
	}
	for _, m := range g.shapes {
		if pl, ok := m.match(p); ok {
			return pl, true
		}
	}
	return placement{}, false
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
