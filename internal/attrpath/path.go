package attrpath

import (
	"slices"
	"strings"
)

// String serializes the Path back into its dotted key form.
func (p Path) String() string {
	return strings.Join(p.Segments, Separator)
}

// Equal reports whether both paths have identical segments.
func (p Path) Equal(other Path) bool {
	return slices.Equal(p.Segments, other.Segments)
}

// HasPrefix reports whether the leading segments of p equal prefix. Matching
// is done segment by segment, so `rootfs-image-extra.version` does not have
// the prefix `rootfs-image`.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix.Len() > p.Len() {
		return false
	}
	return slices.Equal(p.Segments[:prefix.Len()], prefix.Segments)
}
