package config

import (
	"context"
)

// Loader is the interface for a format-specific rule file loader.
type Loader interface {
	// Load reads rule files from the given paths and merges them into a
	// single RuleSet. Paths that do not exist are ignored.
	Load(ctx context.Context, paths ...string) (*RuleSet, error)
}
