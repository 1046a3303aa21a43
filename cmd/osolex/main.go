package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jalextowle/oso/internal/cli"
	"github.com/jalextowle/oso/internal/logger"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	app := &urfavecli.Command{
		Name:    "osolex",
		Usage:   "oso lexical analyzer",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:   "scan",
				Usage:  "Tokenize oso source files and emit the token stream",
				Action: scanCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text or json)",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
					},
					&urfavecli.BoolFlag{
						Name:  "fail-on-invalid",
						Usage: "Exit non-zero when any invalid lexeme is found",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// scanCommand handles the 'osolex scan' command
func scanCommand(ctx context.Context, cmd *urfavecli.Command) error {
	// Load configuration
	config := cli.DefaultConfig

	// Apply flags
	format := cmd.String("format")
	output := cmd.String("output")
	failOnInvalid := cmd.Bool("fail-on-invalid")
	verbose := cmd.Bool("verbose")

	cli.ApplyFlagsToConfig(&config, format, output, failOnInvalid, verbose)

	// Validate configuration
	if err := cli.Validate(&config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger.SetVerbose(config.Verbose)

	// Get search path (first non-flag argument, default to current directory)
	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	// Tokenize
	exitCode, err := cli.Scan(&config, searchPath)
	if err != nil {
		return err
	}

	// Exit with appropriate code
	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}
