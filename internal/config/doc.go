// Package config defines the format-agnostic model for grouping rule files,
// along with the Loader interface for reading them from various sources.
//
// The `config.RuleSet` is what the app hands to the grouping package.
// Concrete implementations of Loader, such as for HCL, are provided in
// separate packages.
package config
