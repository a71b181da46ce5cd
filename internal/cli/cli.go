package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/fgviewer/internal/app"
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
	flagSet := flag.NewFlagSet("fgviewer", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
fgviewer - Inspect, convert and serve frame graph snapshots.

Usage:
  fgviewer [options] [CAPTURE_PATH...]

Arguments:
  CAPTURE_PATH
    Path to a single .hcl capture file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	captureFlag := flagSet.String("capture", "", "Path to the capture file or directory.")
	cFlag := flagSet.String("c", "", "Path to the capture file or directory (shorthand).")
	formatFlag := flagSet.String("format", app.FormatText, "Output format. Options: "+quoted(app.Formats)+".")
	outFlag := flagSet.String("out", "", "Write output to this file instead of stdout.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the viewer HTTP API. 0 is disabled.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io server to publish snapshots to.")
	publishNSFlag := flagSet.String("publish-namespace", "/", "socket.io namespace used when publishing.")
	publishTimeoutFlag := flagSet.Duration("publish-timeout", app.DefaultPublishTimeout, "Connection timeout when publishing.")
	regenerateFlag := flagSet.Bool("regenerate-graphviz", false, "Regenerate graphviz text even when the capture carries one.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *captureFlag != "" {
		paths = append(paths, *captureFlag)
	} else if *cFlag != "" {
		paths = append(paths, *cFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Capture paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No capture path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	if !slices.Contains(app.Formats, format) {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be one of " + quoted(app.Formats)}
	}

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

	if *publishTimeoutFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid publish-timeout: must be positive"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		CapturePaths:       paths,
		Format:             format,
		OutPath:            *outFlag,
		ServePort:          *servePortFlag,
		PublishURL:         *publishURLFlag,
		PublishNamespace:   *publishNSFlag,
		PublishTimeout:     *publishTimeoutFlag,
		RegenerateGraphviz: *regenerateFlag,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func quoted(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "'" + v + "'"
	}
	return strings.Join(parts, ", ")
}
