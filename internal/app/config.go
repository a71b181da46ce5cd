package app

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Output formats understood by Run.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
	FormatHCL  = "hcl"
	FormatNone = "none"
)

// Formats lists every valid output format.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatDOT, FormatHCL, FormatNone}

// DefaultPublishTimeout bounds the socket.io connection attempt.
const DefaultPublishTimeout = 15 * time.Second

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CapturePaths []string // hcl files or directories
	Format       string
	OutPath      string // empty writes to the app output

	ServePort          int // 0 disables the HTTP API
	PublishURL         string
	PublishNamespace   string
	PublishTimeout     time.Duration
	RegenerateGraphviz bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.CapturePaths) == 0 {
		return nil, errors.New("at least one capture path is required")
	}
	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	if !slices.Contains(Formats, cfg.Format) {
		return nil, fmt.Errorf("invalid format %q", cfg.Format)
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("invalid serve port %d", cfg.ServePort)
	}
	if cfg.PublishNamespace == "" {
		cfg.PublishNamespace = "/"
	}
	if cfg.PublishTimeout <= 0 {
		cfg.PublishTimeout = DefaultPublishTimeout
	}

	return &cfg, nil
}
