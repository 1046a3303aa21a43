package cli

import (
	"fmt"
	"os"

	"github.com/jalextowle/oso/internal/discovery"
	oserrors "github.com/jalextowle/oso/internal/errors"
	"github.com/jalextowle/oso/internal/lexer"
	"github.com/jalextowle/oso/internal/logger"
	"github.com/jalextowle/oso/internal/report"
)

// Scan executes the tokenization workflow and returns the process exit code
func Scan(config *Config, searchPath string) (int, error) {
	logger.Debug("discovering oso sources in %s", searchPath)

	// Step 1: Discover source files
	files, err := discovery.Discover(searchPath)
	if err != nil {
		return 1, oserrors.NewDiscoveryError(searchPath, err.Error())
	}

	if len(files) == 0 {
		fmt.Println("No oso source files found (*.oso)")
		return 0, nil
	}

	logger.Debug("found %d source file(s)", len(files))

	// Step 2: Tokenize each file
	dump := &report.Dump{}
	for _, file := range files {
		src, err := os.ReadFile(file.Path)
		if err != nil {
			return 1, fmt.Errorf("failed to read %s: %w", file.RelativePath, err)
		}

		tokens := lexer.NewScanner(string(src)).ScanAll()
		for _, tok := range tokens {
			if tok.Type == lexer.Invalid {
				// Invalid lexemes are reported, not fatal: the scanner
				// guarantees forward progress, so scanning continues.
				logger.Error("%v", oserrors.NewScanError(file.RelativePath, tok.Pos, tok.Text))
			}
		}
		dump.Add(file.RelativePath, tokens)
	}

	logger.Debug("scanned %d token(s), %d invalid", dump.TotalTokens(), dump.TotalInvalid())

	// Step 3: Write the token report
	if err := writeReport(dump, config); err != nil {
		return 1, err
	}

	// Step 4: Compute exit code
	if config.FailOnInvalid && dump.TotalInvalid() > 0 {
		return 1, nil
	}
	return 0, nil
}

// writeReport formats the dump to the configured output destination
func writeReport(dump *report.Dump, config *Config) error {
	formatter, err := report.GetFormatter(report.FormatType(config.Format))
	if err != nil {
		return err
	}

	var writer *os.File
	if config.Output == "-" || config.Output == "" {
		writer = os.Stdout
	} else {
		writer, err = os.Create(config.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer writer.Close()
	}

	if err := formatter.Format(dump, writer); err != nil {
		return oserrors.NewReportError(config.Format, err.Error())
	}

	// Print success message to stderr (so it doesn't interfere with stdout output)
	if config.Output != "-" && config.Output != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", config.Output)
	}

	return nil
}
