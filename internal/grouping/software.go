package grouping

import (
	"github.com/vk/attrgroup/internal/attrpath"
)

// versionLeaf marks the attribute that turns its parent path into a
// software component.
const versionLeaf = "version"

// Partition splits attrs into software attributes and generic device
// attributes. A key is software when it lies under the parent path of some
// `<...>.version` key in attrs. Both halves keep the input order.
func Partition(attrs Attributes) (software, other Attributes) {
	var components []attrpath.Path
	for _, attr := range attrs {
		p, err := attrpath.Parse(attr.Key)
		if err != nil || p.Len() < 2 || p.Last() != versionLeaf {
			continue
		}
		components = append(components, p.Parent())
	}

	for _, attr := range attrs {
		if isSoftwareKey(attr.Key, components) {
			software = append(software, attr)
		} else {
			other = append(other, attr)
		}
	}
	return software, other
}

func isSoftwareKey(key string, components []attrpath.Path) bool {
	p, err := attrpath.Parse(key)
	if err != nil {
		return false
	}
	for _, c := range components {
		if p.HasPrefix(c) {
			return true
		}
	}
	return false
}

// GroupSoftware groups only the software half of attrs with g's rules.
func (g *Grouper) GroupSoftware(attrs Attributes) Tree {
	software, _ := Partition(attrs)
	return g.Group(software)
}

// GroupSoftware groups only the software half of attrs with the default
// rules.
func GroupSoftware(attrs Attributes) Tree {
	return defaultGrouper.GroupSoftware(attrs)
}
