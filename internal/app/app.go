package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/attrgroup/internal/config"
	"github.com/vk/attrgroup/internal/ctxlog"
	"github.com/vk/attrgroup/internal/grouping"
)

// ErrNoRuleFiles is returned when a configured rules path holds no rule files.
var ErrNoRuleFiles = errors.New("no .hcl rule files found")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	grouper *grouping.Grouper
}

// NewApp is the constructor for the main application. It builds an isolated
// logger writing to logW and compiles the grouping rules, loading them
// through loader when a rules path is configured.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	rules, err := loadRules(ctx, cfg.RulesPath, loader)
	if err != nil {
		return nil, err
	}

	grouper, err := grouping.NewGrouper(rules)
	if err != nil {
		return nil, fmt.Errorf("invalid grouping rules: %w", err)
	}
	compiled := grouper.Rules()
	logger.Debug("Grouping rules compiled.", "prefixes", len(compiled.Prefixes), "containers", compiled.Containers, "reserved", compiled.Reserved)

	return &App{
		in:      in,
		outW:    outW,
		logger:  logger,
		config:  cfg,
		grouper: grouper,
	}, nil
}

func loadRules(ctx context.Context, path string, loader config.Loader) (grouping.Rules, error) {
	logger := ctxlog.FromContext(ctx)
	defaults := grouping.DefaultRules()
	if path == "" {
		logger.Debug("No rules path configured, using built-in rules.")
		return defaults, nil
	}

	if _, err := os.Stat(path); err != nil {
		return grouping.Rules{}, fmt.Errorf("rules path %s: %w", path, err)
	}

	rs, err := loader.Load(ctx, path)
	if err != nil {
		return grouping.Rules{}, fmt.Errorf("failed to load grouping rules: %w", err)
	}
	if len(rs.Sources) == 0 {
		return grouping.Rules{}, fmt.Errorf("rules path %s: %w", path, ErrNoRuleFiles)
	}
	logger.Debug("Rule files loaded.", "path", path, "files", rs.Sources, "inherit_defaults", rs.InheritDefaults)
	return rs.Rules(defaults), nil
}

// Grouper returns the application's compiled grouper. This is primarily for testing.
func (a *App) Grouper() *grouping.Grouper {
	return a.grouper
}
