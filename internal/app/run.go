package app

import (
	"context"
	"fmt"

	"github.com/vk/attrgroup/internal/ctxlog"
	"github.com/vk/attrgroup/internal/grouping"
	"github.com/vk/attrgroup/internal/input"
	"github.com/vk/attrgroup/internal/render"
)

// Run reads the attribute document, groups it and writes the rendered tree.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "attributes", a.config.AttributesPath)

	attrs, err := a.readAttributes(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Attribute document read.", "count", len(attrs))

	var tree grouping.Tree
	if a.config.SoftwareOnly {
		software, other := grouping.Partition(attrs)
		a.logger.Debug("Partitioned attributes.", "software", len(software), "other", len(other))
		tree = a.grouper.Group(software)
	} else {
		tree = a.grouper.Group(attrs)
	}
	a.logger.Info("Attributes grouped.", "attributes", len(attrs), "groups", tree.Len())
	a.logger.Debug("Top-level groups.", "titles", tree.Keys())

	if err := render.Write(a.outW, a.config.Format, tree); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) readAttributes(ctx context.Context) (grouping.Attributes, error) {
	if a.config.AttributesPath == StdinPath {
		attrs, err := input.Read(ctx, a.config.InputFormat, "stdin", a.in)
		if err != nil {
			return nil, fmt.Errorf("failed to read attributes from stdin: %w", err)
		}
		return attrs, nil
	}

	attrs, err := input.ReadFile(ctx, a.config.InputFormat, a.config.AttributesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read attributes: %w", err)
	}
	return attrs, nil
}
