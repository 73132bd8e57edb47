package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/attrgroup/internal/grouping"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatText}
}

// Write renders tree to w in the given format.
func Write(w io.Writer, format string, tree grouping.Tree) error {
	switch format {
	case FormatJSON:
		return JSON(w, tree, true)
	case FormatYAML:
		return YAML(w, tree)
	case FormatText:
		return Text(w, tree)
	default:
		return fmt.Errorf("unknown output format %q, expected one of %s", format, strings.Join(Formats(), ", "))
	}
}

// JSON writes the tree as a JSON object keyed by top-level title.
func JSON(w io.Writer, tree grouping.Tree, indent bool) error {
	var (
		out []byte
		err error
	)
	if indent {
		out, err = json.MarshalIndent(tree, "", "  ")
	} else {
		out, err = json.Marshal(tree)
	}
	if err != nil {
		return fmt.Errorf("failed to encode tree as JSON: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// YAML writes the tree as a YAML mapping with the same shape as JSON.
func YAML(w io.Writer, tree grouping.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return fmt.Errorf("failed to encode tree as YAML: %w", err)
	}
	return enc.Close()
}

// Text writes an indented outline: one line per node, followed by its
// content as `key: value` lines one level deeper.
func Text(w io.Writer, tree grouping.Tree) error {
	var sb strings.Builder
	tree.Walk(func(depth int, _ []string, n *grouping.Node) bool {
		indent := strings.Repeat("  ", depth)
		fmt.Fprintf(&sb, "%s%s\n", indent, n.Title)
		for pair := n.Content.Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&sb, "%s  %s: %v\n", indent, pair.Key, pair.Value)
		}
		return true
	})
	_, err := io.WriteString(w, sb.String())
	return err
}
