package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/attrgroup/internal/config"
	"github.com/vk/attrgroup/internal/ctxlog"
	"github.com/vk/attrgroup/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL rule loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths, in sorted order, and merges
// them into one RuleSet.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.RuleSet, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL rule loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL rule files.", "count", len(files))

	parser := hclparse.NewParser()
	rules := &config.RuleSet{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root ruleFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		fileRules, err := translateRuleFile(&root)
		if err != nil {
			return nil, fmt.Errorf("invalid rules in %s: %w", file, err)
		}
		fileRules.Sources = []string{file}
		rules.Merge(fileRules)
		logger.Debug("Merged rule file.", "file", file, "prefixes", len(fileRules.Prefixes), "containers", len(fileRules.Containers))
	}

	logger.Debug("HCL rule loading complete.", "files", len(files), "prefixes", len(rules.Prefixes), "containers", len(rules.Containers), "reserved", len(rules.Reserved))
	return rules, nil
}
