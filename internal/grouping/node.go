package grouping

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Node is one titled group in the attribute tree. Content and Children keep
// first-occurrence order and marshal to JSON and YAML in that order.
type Node struct {
	Title    string                                `json:"title" yaml:"title"`
	Content  *orderedmap.OrderedMap[string, any]   `json:"content" yaml:"content"`
	Children *orderedmap.OrderedMap[string, *Node] `json:"children" yaml:"children"`
}

// NewNode creates a node with empty, non-nil content and children.
func NewNode(title string) *Node {
	return &Node{
		Title:    title,
		Content:  orderedmap.New[string, any](),
		Children: orderedmap.New[string, *Node](),
	}
}

// Child returns the child with the given title, creating it on first use.
func (n *Node) Child(title string) *Node {
	return getOrCreate(n.Children, title)
}

// WalkFunc is called for every node visited by Walk. path holds the titles
// from the top-level node down to n. Returning false skips n's children.
type WalkFunc func(depth int, path []string, n *Node) bool

// Walk visits n and its descendants depth-first in insertion order.
func (n *Node) Walk(fn WalkFunc) {
	n.walk(0, nil, fn)
}

func (n *Node) walk(depth int, parent []string, fn WalkFunc) {
	path := append(append([]string(nil), parent...), n.Title)
	if !fn(depth, path, n) {
		return
	}
	for pair := n.Children.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.walk(depth+1, path, fn)
	}
}

// Tree maps top-level group titles to their nodes in first-occurrence order.
// The zero value is an empty tree ready to use.
type Tree struct {
	nodes *orderedmap.OrderedMap[string, *Node]
}

// NewTree creates an empty tree.
func NewTree() Tree {
	return Tree{nodes: orderedmap.New[string, *Node]()}
}

// Len returns the number of top-level nodes.
func (t Tree) Len() int {
	if t.nodes == nil {
		return 0
	}
	return t.nodes.Len()
}

// Keys returns the top-level titles in order.
func (t Tree) Keys() []string {
	return keys(t.nodes)
}

// Get returns the top-level node with the given title.
func (t Tree) Get(title string) (*Node, bool) {
	if t.nodes == nil {
		return nil, false
	}
	return t.nodes.Get(title)
}

// Node returns the top-level node with the given title, creating it on
// first use.
func (t *Tree) Node(title string) *Node {
	if t.nodes == nil {
		t.nodes = orderedmap.New[string, *Node]()
	}
	return getOrCreate(t.nodes, title)
}

// Walk visits every top-level node and its descendants in insertion order.
func (t Tree) Walk(fn WalkFunc) {
	if t.nodes == nil {
		return
	}
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		pair.Value.Walk(fn)
	}
}

// MarshalJSON encodes the tree as an object keyed by top-level title.
func (t Tree) MarshalJSON() ([]byte, error) {
	if t.nodes == nil {
		return []byte("{}"), nil
	}
	return t.nodes.MarshalJSON()
}

// MarshalYAML encodes the tree as a mapping keyed by top-level title.
func (t Tree) MarshalYAML() (any, error) {
	if t.nodes == nil {
		return map[string]any{}, nil
	}
	return t.nodes.MarshalYAML()
}

func getOrCreate(nodes *orderedmap.OrderedMap[string, *Node], title string) *Node {
	if n, ok := nodes.Get(title); ok {
		return n
	}
	n := NewNode(title)
	nodes.Set(title, n)
	return n
}

func keys[V any](m *orderedmap.OrderedMap[string, V]) []string {
	if m == nil {
		return []string{}
	}
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
