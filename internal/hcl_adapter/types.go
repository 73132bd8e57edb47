package hcl_adapter

import (
	"github.com/zclconf/go-cty/cty"
)

// ruleFile is the root of a rule file.
type ruleFile struct {
	InheritDefaults bool           `hcl:"inherit_defaults,optional"`
	Containers      []string       `hcl:"containers,optional"`
	Reserved        []string       `hcl:"reserved,optional"`
	Prefixes        []*prefixBlock `hcl:"prefix,block"`
}

// prefixBlock maps `prefix "<path>" { ... }`.
type prefixBlock struct {
	Path   string   `hcl:"path,label"`
	Title  string   `hcl:"title"`
	Leaves []string `hcl:"leaves"`
}

// attributesFile is the root of an HCL attribute document.
type attributesFile struct {
	Attributes cty.Value `hcl:"attributes"`
}
