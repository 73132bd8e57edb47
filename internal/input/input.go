package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vk/attrgroup/internal/ctxlog"
	"github.com/vk/attrgroup/internal/grouping"
	"github.com/vk/attrgroup/internal/hcl_adapter"
)

// inventoryField holds the attribute list of an inventory document.
const inventoryField = "attributes"

// Document formats. FormatAuto picks HCL for a .hcl name and YAML otherwise;
// JSON documents are read by the YAML parser.
const (
	FormatAuto = ""
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatHCL  = "hcl"
)

// Formats lists the explicit document formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatHCL}
}

// ErrNotMapping is returned when the top level of a document is not a mapping.
var ErrNotMapping = errors.New("attribute document must be a mapping")

// ReadFile opens path and reads it with Read.
func ReadFile(ctx context.Context, format, path string) (grouping.Attributes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open attribute document: %w", err)
	}
	defer f.Close()
	return Read(ctx, format, path, f)
}

// Read parses an attribute document in the given format. name annotates
// errors and, with FormatAuto, picks the format by extension.
func Read(ctx context.Context, format, name string, r io.Reader) (grouping.Attributes, error) {
	logger := ctxlog.FromContext(ctx)

	if format == FormatAuto {
		format = FormatYAML
		if strings.EqualFold(filepath.Ext(name), ".hcl") {
			format = FormatHCL
		}
	}
	if !slices.Contains(Formats(), format) {
		return nil, fmt.Errorf("unknown input format %q, expected one of %s", format, strings.Join(Formats(), ", "))
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	if format == FormatHCL {
		logger.Debug("Reading HCL attribute document.", "name", name)
		return hcl_adapter.DecodeAttributes(name, src)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	if doc.Kind == 0 {
		logger.Debug("Attribute document is empty.", "name", name)
		return grouping.Attributes{}, nil
	}

	root := resolve(&doc)
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = resolve(root.Content[0])
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w", name, ErrNotMapping)
	}

	if list, ok := inventoryList(root); ok {
		logger.Debug("Reading inventory attribute document.", "name", name, "entries", len(list.Content))
		return readInventory(ctx, list)
	}
	logger.Debug("Reading flat attribute document.", "name", name, "entries", len(root.Content)/2)
	return readFlat(ctx, root)
}

func readFlat(ctx context.Context, mapping *yaml.Node) (grouping.Attributes, error) {
	attrs := grouping.Attributes{}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if value, ok := scalarValue(ctx, key, mapping.Content[i+1]); ok {
			attrs = append(attrs, grouping.Attribute{Key: key, Value: value})
		}
	}
	return attrs, nil
}

// inventoryEntry is one element of an inventory attribute list.
type inventoryEntry struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
	Scope string    `yaml:"scope"`
}

func readInventory(ctx context.Context, list *yaml.Node) (grouping.Attributes, error) {
	attrs := grouping.Attributes{}
	for i, item := range list.Content {
		var entry inventoryEntry
		if err := item.Decode(&entry); err != nil {
			return nil, fmt.Errorf("inventory attribute %d: %w", i, err)
		}
		if entry.Name == "" {
			ctxlog.FromContext(ctx).Debug("Skipping inventory attribute without a name.", "index", i)
			continue
		}
		if value, ok := scalarValue(ctx, entry.Name, &entry.Value); ok {
			attrs = append(attrs, grouping.Attribute{Key: entry.Name, Value: value})
		}
	}
	return attrs, nil
}

// inventoryList returns the attribute list when mapping is an inventory
// document. Flat documents only hold scalars, so a sequence under the
// `attributes` key is unambiguous.
func inventoryList(mapping *yaml.Node) (*yaml.Node, bool) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value != inventoryField {
			continue
		}
		if v := resolve(mapping.Content[i+1]); v.Kind == yaml.SequenceNode {
			return v, true
		}
	}
	return nil, false
}

func scalarValue(ctx context.Context, key string, node *yaml.Node) (any, bool) {
	node = resolve(node)
	if node.Kind != yaml.ScalarNode {
		ctxlog.FromContext(ctx).Debug("Skipping non-scalar attribute.", "key", key)
		return nil, false
	}
	if node.Tag == "!!timestamp" {
		return node.Value, true
	}
	var v any
	if err := node.Decode(&v); err != nil {
		ctxlog.FromContext(ctx).Debug("Skipping attribute with unsupported value.", "key", key, "tag", node.Tag)
		return nil, false
	}
	if node.Tag == "!!int" || node.Tag == "!!float" {
		// Numbers that do not print back as written ("1.10", "0100", ".nan")
		// keep their source text.
		if fmt.Sprint(v) != node.Value {
			return node.Value, true
		}
	}
	if !grouping.IsScalar(v) {
		ctxlog.FromContext(ctx).Debug("Skipping attribute with unsupported value.", "key", key, "tag", node.Tag)
		return nil, false
	}
	return v, true
}

func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
