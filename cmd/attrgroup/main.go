package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/attrgroup/internal/app"
	"github.com/vk/attrgroup/internal/cli"
	"github.com/vk/attrgroup/internal/hcl_adapter"
)

// main is the entrypoint for the attrgroup command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(in io.Reader, outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	attrgroupApp, err := app.NewApp(in, outW, errW, appConfig, hcl_adapter.NewLoader())
	if err != nil {
		return fmt.Errorf("startup failed: %w", err)
	}

	return attrgroupApp.Run(context.Background())
}
