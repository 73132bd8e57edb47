/*
Package attrpath provides a structured representation of the dotted keys
used by device inventory and artifact attributes, e.g.
`gateway.G13.rootfs-image.version`.

A key is a dot-separated sequence of non-empty segments. Segments are taken
verbatim: hyphens, underscores and mixed case are all part of a segment name.
The package centralizes splitting and re-joining so that grouping code never
works on raw strings.
*/
package attrpath
