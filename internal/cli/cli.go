package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/attrgroup/internal/app"
	"github.com/vk/attrgroup/internal/input"
	"github.com/vk/attrgroup/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("attrgroup", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
attrgroup - Groups dotted device and artifact attributes into a display tree.

Usage:
  attrgroup [options] [ATTRIBUTES_PATH]

Arguments:
  ATTRIBUTES_PATH
    Path to a .json, .yaml or .hcl attribute document, or "-" for stdin.
    The format follows the file extension; stdin is read as JSON or YAML
    unless -input-format says otherwise.

Options:
`)
		flagSet.PrintDefaults()
	}

	attributesFlag := flagSet.String("attributes", "", "Path to the attribute document.")
	aFlag := flagSet.String("a", "", "Path to the attribute document (shorthand).")
	inputFormatFlag := flagSet.String("input-format", "", "Attribute document format. Options: "+strings.Join(input.Formats(), ", ")+". Picked from the file extension when empty.")
	rulesFlag := flagSet.String("rules", "", "Path to an HCL rules file or directory. Built-in rules are used when empty.")
	formatFlag := flagSet.String("format", render.FormatJSON, "Output format. Options: "+strings.Join(render.Formats(), ", ")+".")
	softwareFlag := flagSet.Bool("software-only", false, "Group only software attributes (components that report a .version key). By default dotted generic device attributes such as network.interfaces are grouped too.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *attributesFlag != "" {
		path = *attributesFlag
	} else if *aFlag != "" {
		path = *aFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Attribute path determined.", "path", path)

	if path == "" {
		slog.Debug("No attribute path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		AttributesPath: path,
		InputFormat:    strings.ToLower(*inputFormatFlag),
		RulesPath:      *rulesFlag,
		Format:         format,
		SoftwareOnly:   *softwareFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
