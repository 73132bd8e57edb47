package grouping

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_ChildGetOrCreate(t *testing.T) {
	n := NewNode("gateway")
	first := n.Child("G13")
	second := n.Child("G13")

	assert.Same(t, first, second)
	assert.Equal(t, 1, n.Children.Len())
	assert.NotNil(t, first.Content)
	assert.NotNil(t, first.Children)
}

func TestTree_Walk(t *testing.T) {
	tree := Group(attrs(
		"gateway.G13.rootfs-image.version", "gw",
		"gateway.G14.version", "g14",
		"test.version", "t",
	))

	var visited []string
	tree.Walk(func(depth int, path []string, n *Node) bool {
		visited = append(visited, strings.Repeat("-", depth)+strings.Join(path, "/"))
		return true
	})

	assert.Equal(t, []string{
		"gateway",
		"-gateway/G13",
		"--gateway/G13/" + RootfsTitle,
		"-gateway/G14",
		"test",
	}, visited)
}

func TestTree_WalkPrunes(t *testing.T) {
	tree := Group(attrs("gateway.G13.rootfs-image.version", "gw"))

	var titles []string
	tree.Walk(func(depth int, path []string, n *Node) bool {
		titles = append(titles, n.Title)
		return depth < 1
	})

	assert.Equal(t, []string{"gateway", "G13"}, titles)
}

func TestTree_MarshalJSON(t *testing.T) {
	tree := Group(attrs(
		"rtos.R456.version", "rtos-v4",
		"test.version", "test-2",
	))

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"rtos": {
			"title": "rtos",
			"content": {},
			"children": {
				"R456": {"title": "R456", "content": {"version": "rtos-v4"}, "children": {}}
			}
		},
		"test": {"title": "test", "content": {"version": "test-2"}, "children": {}}
	}`, string(out))
	assert.True(t, strings.HasPrefix(string(out), `{"rtos":`))
}

func TestTree_ZeroValue(t *testing.T) {
	var tree Tree

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Keys())
	_, ok := tree.Get("test")
	assert.False(t, ok)
	tree.Walk(func(int, []string, *Node) bool {
		t.Fatal("walk visited a node of an empty tree")
		return false
	})

	out, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))

	tree.Node("test").Content.Set("version", "1")
	assert.Equal(t, []string{"test"}, tree.Keys())
}

func TestIsScalar(t *testing.T) {
	for _, v := range []any{"s", true, 1, int8(1), uint64(2), 1.5, float32(2)} {
		assert.True(t, IsScalar(v), "%T should be scalar", v)
	}
	for _, v := range []any{
		nil, []string{"a"}, map[string]any{}, struct{}{}, &struct{}{},
		math.NaN(), math.Inf(1), math.Inf(-1), float32(math.Inf(1)),
	} {
		assert.False(t, IsScalar(v), "%T should not be scalar", v)
	}
}

func TestFromMap_SortsKeys(t *testing.T) {
	a := FromMap(map[string]any{"b.version": 1, "a.version": 2, "c": 3})
	assert.Equal(t, []string{"a.version", "b.version", "c"}, keysOf(a))
}
