package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/attrgroup/internal/grouping"
)

func sampleTree() grouping.Tree {
	return grouping.Group(grouping.Attributes{
		{Key: "gateway.G13.rootfs-image.version", Value: "gw"},
		{Key: "test.version", Value: "test-2"},
		{Key: "test.build", Value: 7},
	})
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleTree(), false))

	assert.Equal(t,
		`{"gateway":{"title":"gateway","content":{},"children":{"G13":{"title":"G13","content":{},"children":{"Root filesystem":{"title":"Root filesystem","content":{"version":"gw"},"children":{}}}}}},`+
			`"test":{"title":"test","content":{"version":"test-2","build":7},"children":{}}}`+"\n",
		buf.String())
}

func TestJSON_Indented(t *testing.T) {
	tree := grouping.Group(grouping.Attributes{{Key: "test.version", Value: "test-2"}})

	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, tree, true))

	expected := strings.Join([]string{
		`{`,
		`  "test": {`,
		`    "title": "test",`,
		`    "content": {`,
		`      "version": "test-2"`,
		`    },`,
		`    "children": {}`,
		`  }`,
		`}`,
		``,
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, YAML(&buf, sampleTree()))

	expected := strings.Join([]string{
		`gateway:`,
		`  title: gateway`,
		`  content: {}`,
		`  children:`,
		`    G13:`,
		`      title: G13`,
		`      content: {}`,
		`      children:`,
		`        Root filesystem:`,
		`          title: Root filesystem`,
		`          content:`,
		`            version: gw`,
		`          children: {}`,
		`test:`,
		`  title: test`,
		`  content:`,
		`    version: test-2`,
		`    build: 7`,
		`  children: {}`,
		``,
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleTree()))

	expected := strings.Join([]string{
		`gateway`,
		`  G13`,
		`    Root filesystem`,
		`      version: gw`,
		`test`,
		`  version: test-2`,
		`  build: 7`,
		``,
	}, "\n")
	assert.Equal(t, expected, buf.String())
}

func TestWrite(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, sampleTree()))
			assert.Contains(t, buf.String(), "Root filesystem")
		})
	}

	err := Write(&bytes.Buffer{}, "xml", sampleTree())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestEmptyTree(t *testing.T) {
	for name, empty := range map[string]grouping.Tree{
		"grouped": grouping.Group(nil),
		"zero":    {},
	} {
		t.Run(name, func(t *testing.T) {
			var js, ym, txt bytes.Buffer
			require.NoError(t, JSON(&js, empty, true))
			require.NoError(t, YAML(&ym, empty))
			require.NoError(t, Text(&txt, empty))

			assert.Equal(t, "{}\n", js.String())
			assert.Equal(t, "{}\n", ym.String())
			assert.Equal(t, "", txt.String())
		})
	}
}

func TestWrite_NonFiniteValuesAreSkipped(t *testing.T) {
	tree := grouping.Group(grouping.Attributes{
		{Key: "b.load", Value: math.NaN()},
		{Key: "b.peak", Value: math.Inf(1)},
		{Key: "b.version", Value: "1"},
	})

	for _, format := range Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, format, tree))
			assert.NotContains(t, buf.String(), "load")
			assert.NotContains(t, buf.String(), "peak")
		})
	}
}
