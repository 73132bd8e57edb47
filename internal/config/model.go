package config

import (
	"github.com/vk/attrgroup/internal/grouping"
)

// RuleSet is the unified, format-agnostic representation of all loaded rule
// files.
type RuleSet struct {
	// InheritDefaults keeps the built-in rule table and layers the loaded
	// entries on top of it.
	InheritDefaults bool
	Prefixes        []grouping.Prefix
	Containers      []string
	Reserved        []string
	// Sources lists the rule files merged into the set, in load order.
	Sources []string
}

// Merge appends other's entries to r. A prefix with an already known path
// replaces the earlier one in place. InheritDefaults is sticky once set.
func (r *RuleSet) Merge(other *RuleSet) {
	if other == nil {
		return
	}
	r.InheritDefaults = r.InheritDefaults || other.InheritDefaults
	r.Prefixes = mergePrefixes(r.Prefixes, other.Prefixes)
	r.Containers = appendUnique(r.Containers, other.Containers...)
	r.Reserved = appendUnique(r.Reserved, other.Reserved...)
	r.Sources = append(r.Sources, other.Sources...)
}

// Rules resolves the set into grouping rules, layering it on top of
// defaults when InheritDefaults is set.
func (r *RuleSet) Rules(defaults grouping.Rules) grouping.Rules {
	var base grouping.Rules
	if r.InheritDefaults {
		base = grouping.Rules{
			Prefixes:   append([]grouping.Prefix(nil), defaults.Prefixes...),
			Containers: append([]string(nil), defaults.Containers...),
			Reserved:   append([]string(nil), defaults.Reserved...),
		}
	}
	return grouping.Rules{
		Prefixes:   mergePrefixes(base.Prefixes, r.Prefixes),
		Containers: appendUnique(base.Containers, r.Containers...),
		Reserved:   appendUnique(base.Reserved, r.Reserved...),
	}
}

func mergePrefixes(dst, src []grouping.Prefix) []grouping.Prefix {
	for _, p := range src {
		replaced := false
		for i := range dst {
			if dst[i].Path == p.Path {
				dst[i] = p
				replaced = true
				break
			}
		}
		if !replaced {
			dst = append(dst, p)
		}
	}
	return dst
}

func appendUnique(dst []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range dst {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, item)
		}
	}
	return dst
}
