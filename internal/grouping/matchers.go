package grouping

import (
	"github.com/vk/attrgroup/internal/attrpath"
)

// placement is where a matched attribute ends up: the chain of node titles
// from the top level down, and the content property to set on the last one.
// A nil titles slice means the attribute is consumed without being placed.
type placement struct {
	titles []string
	leaf   string
}

func (p placement) dropped() bool {
	return p.titles == nil
}

// matcher is a predicate plus extractor for one recognized key shape.
type matcher struct {
	name  string
	match func(p attrpath.Path) (placement, bool)
}

type compiledPrefix struct {
	title  string
	leaves map[string]struct{}
}

// matchers returns the key shapes in evaluation order.
func (g *Grouper) matchers() []matcher {
	return []matcher{
		{name: "reserved", match: g.matchReserved},
		{name: "prefix", match: g.matchPrefix},
		{name: "container", match: g.matchContainer},
		{name: "generic", match: g.matchGeneric},
	}
}

func (g *Grouper) matchReserved(p attrpath.Path) (placement, bool) {
	_, ok := g.reserved[p.String()]
	return placement{}, ok
}

func (g *Grouper) matchPrefix(p attrpath.Path) (placement, bool) {
	title, ok := g.prefixTitle(p)
	if !ok {
		return placement{}, false
	}
	return placement{titles: []string{title}, leaf: p.Last()}, true
}

func (g *Grouper) matchContainer(p attrpath.Path) (placement, bool) {
	if p.Len() < 3 {
		return placement{}, false
	}
	container := p.First()
	if _, ok := g.containers[container]; !ok {
		return placement{}, false
	}

	entity := p.Segments[1]
	rest := p.Tail(2)
	if rest.Len() == 1 {
		if _, reserved := g.reserved[rest.Last()]; reserved {
			return placement{}, true
		}
		return placement{titles: []string{container, entity}, leaf: rest.Last()}, true
	}

	if title, ok := g.prefixTitle(rest); ok {
		return placement{titles: []string{container, entity, title}, leaf: rest.Last()}, true
	}
	return placement{titles: []string{container, entity, rest.Parent().String()}, leaf: rest.Last()}, true
}

func (g *Grouper) matchGeneric(p attrpath.Path) (placement, bool) {
	if p.Len() < 2 {
		return placement{}, false
	}
	return placement{titles: []string{p.Parent().String()}, leaf: p.Last()}, true
}

// prefixTitle reports the fixed title for `<prefix>.<leaf>` keys.
func (g *Grouper) prefixTitle(p attrpath.Path) (string, bool) {
	if p.Len() < 2 {
		return "", false
	}
	prefix, ok := g.prefixes[p.Parent().String()]
	if !ok {
		return "", false
	}
	if _, ok := prefix.leaves[p.Last()]; !ok {
		return "", false
	}
	return prefix.title, true
}
