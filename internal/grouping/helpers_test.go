package grouping

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type contentEntry struct {
	Key   string
	Value any
}

type childEntry struct {
	Title string
	Node  *Node
}

// treeCmpOpts compares ordered maps by their entries in insertion order.
var treeCmpOpts = cmp.Options{
	cmp.Transformer("content", func(m *orderedmap.OrderedMap[string, any]) []contentEntry {
		out := []contentEntry{}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, contentEntry{Key: pair.Key, Value: pair.Value})
		}
		return out
	}),
	cmp.Transformer("children", func(m *orderedmap.OrderedMap[string, *Node]) []childEntry {
		out := []childEntry{}
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			out = append(out, childEntry{Title: pair.Key, Node: pair.Value})
		}
		return out
	}),
	cmp.Transformer("tree", func(t Tree) []childEntry {
		out := []childEntry{}
		for _, title := range t.Keys() {
			n, _ := t.Get(title)
			out = append(out, childEntry{Title: title, Node: n})
		}
		return out
	}),
}

// node builds an expected node from alternating key/value content pairs.
func node(title string, kv ...any) *Node {
	n := NewNode(title)
	for i := 0; i+1 < len(kv); i += 2 {
		n.Content.Set(kv[i].(string), kv[i+1])
	}
	return n
}

func withChildren(n *Node, children ...*Node) *Node {
	for _, c := range children {
		n.Children.Set(c.Title, c)
	}
	return n
}

func treeOf(nodes ...*Node) Tree {
	t := NewTree()
	for _, n := range nodes {
		*t.Node(n.Title) = *n
	}
	return t
}

func attrs(kv ...any) Attributes {
	var out Attributes
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, Attribute{Key: kv[i].(string), Value: kv[i+1]})
	}
	return out
}

func keysOf(a Attributes) []string {
	out := make([]string, len(a))
	for i, attr := range a {
		out[i] = attr.Key
	}
	return out
}

func requireTree(t *testing.T, expected, actual Tree) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, treeCmpOpts); diff != "" {
		t.Fatalf("grouped tree mismatch (-want +got):\n%s", diff)
	}
}
