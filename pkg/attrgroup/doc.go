// Package attrgroup groups flat, dot-keyed device and artifact attributes
// into an ordered tree for display.
//
// Quick start:
//
//	tree := attrgroup.Group(attrgroup.FromMap(map[string]any{
//	    "rootfs-image.version": "v1",
//	    "rtos.R456.version":    "rtos-v4",
//	}))
//	tree.Walk(func(depth int, path []string, n *attrgroup.Node) bool {
//	    fmt.Println(strings.Join(path, " / "), n.Content.Len())
//	    return true
//	})
//
// Node content and children are insertion-ordered maps from
// github.com/wk8/go-ordered-map/v2, and the whole tree marshals to JSON or
// YAML in first-occurrence order. The zero Tree is empty and usable.
//
// Group never fails: keys that do not fit a recognized shape are dropped.
// Custom rule tables are compiled once with NewGrouper and the resulting
// Grouper is safe for concurrent use.
package attrgroup
