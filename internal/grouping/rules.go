package grouping

import (
	"errors"
	"fmt"

	"github.com/vk/attrgroup/internal/attrpath"
)

// RootfsTitle is the display title for root filesystem image attributes.
const RootfsTitle = "Root filesystem"

// Prefix maps a known attribute key prefix to a display title. Only keys of
// the form `<Path>.<leaf>` with leaf in Leaves match.
type Prefix struct {
	Path   string
	Title  string
	Leaves []string
}

// Rules is the static configuration of a Grouper.
type Rules struct {
	// Prefixes are checked before any generic parsing.
	Prefixes []Prefix
	// Containers are top-level identifiers that hold several named child
	// entities, e.g. `gateway.<id>.<...>`.
	Containers []string
	// Reserved keys are never grouped.
	Reserved []string
}

// DefaultRules returns the rule table used by the fleet console.
func DefaultRules() Rules {
	return Rules{
		Prefixes: []Prefix{
			{Path: "rootfs-image", Title: RootfsTitle, Leaves: []string{"version", "checksum"}},
		},
		Containers: []string{"gateway", "rtos"},
		Reserved:   []string{"artifact_name"},
	}
}

// Validate checks the rules for entries that could never match.
func (r Rules) Validate() error {
	var errs []error
	seen := make(map[string]struct{}, len(r.Prefixes))
	for _, p := range r.Prefixes {
		if _, err := attrpath.Parse(p.Path); err != nil {
			errs = append(errs, fmt.Errorf("prefix %q: %w", p.Path, err))
			continue
		}
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("prefix %q: title cannot be empty", p.Path))
		}
		if len(p.Leaves) == 0 {
			errs = append(errs, fmt.Errorf("prefix %q: at least one leaf is required", p.Path))
		}
		if _, dup := seen[p.Path]; dup {
			errs = append(errs, fmt.Errorf("prefix %q: declared more than once", p.Path))
		}
		seen[p.Path] = struct{}{}
	}
	for _, c := range r.Containers {
		p, err := attrpath.Parse(c)
		if err != nil {
			errs = append(errs, fmt.Errorf("container %q: %w", c, err))
		} else if p.Len() != 1 {
			errs = append(errs, fmt.Errorf("container %q: must be a single key segment", c))
		}
	}
	return errors.Join(errs...)
}
