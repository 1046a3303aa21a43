package report

import (
	"bytes"
	"fmt"
	"io"
)

// TextReporter formats a token dump as a plain-text listing: a header per
// file, one "offset<TAB>type<TAB>text" line per token, and a closing
// summary with token and invalid counts.
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Format formats the token dump as text and writes to the writer
func (r *TextReporter) Format(dump *Dump, writer io.Writer) error {
	for _, file := range dump.Files {
		if _, err := fmt.Fprintf(writer, "%s:\n", file.Path); err != nil {
			return fmt.Errorf("failed to write text output: %w", err)
		}
		for _, tok := range file.Tokens {
			if _, err := fmt.Fprintf(writer, "  %d\t%s\t%q\n", tok.Offset, tok.Type, tok.Text); err != nil {
				return fmt.Errorf("failed to write text output: %w", err)
			}
		}
	}
	_, err := fmt.Fprintf(writer, "%d token(s), %d invalid\n", dump.TotalTokens(), dump.TotalInvalid())
	return err
}

// FormatString returns the token dump as a text string
func (r *TextReporter) FormatString(dump *Dump) (string, error) {
	var buf bytes.Buffer
	if err := r.Format(dump, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}
