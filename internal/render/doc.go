// Package render writes grouped attribute trees as JSON, YAML or an indented
// text outline. Every format keeps the first-occurrence order of the tree.
package render
