package attrgroup_test

import (
	"fmt"
	"strings"

	"github.com/vk/attrgroup/pkg/attrgroup"
)

func Example() {
	tree := attrgroup.Group(attrgroup.Attributes{
		{Key: "artifact_name", Value: "myapp"},
		{Key: "rootfs-image.version", Value: "v1"},
		{Key: "gateway.G13.rootfs-image.version", Value: "gw-v4"},
		{Key: "rtos.R456.version", Value: "rtos-v4"},
	})

	tree.Walk(func(depth int, _ []string, n *attrgroup.Node) bool {
		var props []string
		for pair := n.Content.Oldest(); pair != nil; pair = pair.Next() {
			props = append(props, pair.Key)
		}
		fmt.Printf("%s%s %v\n", strings.Repeat("  ", depth), n.Title, props)
		return true
	})
	// Output:
	// Root filesystem [version]
	// gateway []
	//   G13 []
	//     Root filesystem [version]
	// rtos []
	//   R456 [version]
}

func ExampleNewGrouper() {
	g, err := attrgroup.NewGrouper(attrgroup.Rules{
		Prefixes: []attrgroup.Prefix{
			{Path: "data-partition.myapp", Title: "My application", Leaves: []string{"version"}},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	tree := g.Group(attrgroup.FromMap(map[string]any{"data-partition.myapp.version": "v2020.10"}))
	n, _ := tree.Get("My application")
	v, _ := n.Content.Get("version")
	fmt.Println(tree.Keys(), v)
	// Output:
	// [My application] v2020.10
}
