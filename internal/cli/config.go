package cli

import (
	"fmt"

	"github.com/jalextowle/oso/internal/report"
	"github.com/jalextowle/oso/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	SearchPath:    ".",
	Format:        string(report.FormatText),
	Output:        "-",
	FailOnInvalid: false,
	Verbose:       false,
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, format, output string, failOnInvalid, verbose bool) {
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.Output = output
	}
	c.FailOnInvalid = failOnInvalid
	c.Verbose = verbose
}

// Validate checks that the configuration is usable
func Validate(c *Config) error {
	if !report.ValidFormat(c.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", c.Format, report.SupportedFormats())
	}
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty (use - for stdout)")
	}
	return nil
}
