package attrpath

// Separator joins the segments of an attribute key.
const Separator = "."

// Path is a parsed attribute key.
type Path struct {
	Segments []string
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.Segments)
}

// Last returns the final segment, the leaf property name of an attribute.
// It returns an empty string for an empty path.
func (p Path) Last() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// First returns the leading segment or an empty string for an empty path.
func (p Path) First() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[0]
}

// Head returns a path made of the first n segments. n is clamped to the
// path length.
func (p Path) Head(n int) Path {
	n = clamp(n, len(p.Segments))
	return Path{Segments: append([]string(nil), p.Segments[:n]...)}
}

// Tail returns a path with the first n segments removed. n is clamped to the
// path length.
func (p Path) Tail(n int) Path {
	n = clamp(n, len(p.Segments))
	return Path{Segments: append([]string(nil), p.Segments[n:]...)}
}

// Parent returns the path without its last segment.
func (p Path) Parent() Path {
	return p.Head(len(p.Segments) - 1)
}

func clamp(n, limit int) int {
	if n < 0 {
		return 0
	}
	if n > limit {
		return limit
	}
	return n
}
