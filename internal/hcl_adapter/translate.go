package hcl_adapter

import (
	"github.com/vk/attrgroup/internal/config"
	"github.com/vk/attrgroup/internal/grouping"
)

// translateRuleFile converts a decoded rule file into the format-agnostic
// model and validates it on its own.
func translateRuleFile(root *ruleFile) (*config.RuleSet, error) {
	rs := &config.RuleSet{
		InheritDefaults: root.InheritDefaults,
		Containers:      root.Containers,
		Reserved:        root.Reserved,
	}
	for _, p := range root.Prefixes {
		rs.Prefixes = append(rs.Prefixes, grouping.Prefix{
			Path:   p.Path,
			Title:  p.Title,
			Leaves: p.Leaves,
		})
	}

	check := grouping.Rules{Prefixes: rs.Prefixes, Containers: rs.Containers, Reserved: rs.Reserved}
	if err := check.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}
