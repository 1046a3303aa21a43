package report

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// JSONReporter formats a token dump as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format formats the token dump as JSON and writes to the writer
func (r *JSONReporter) Format(dump *Dump, writer io.Writer) error {
	err := json.MarshalWrite(writer, dump, jsontext.Multiline(true), jsontext.WithIndent("  "))
	if err != nil {
		return fmt.Errorf("failed to marshal token dump to JSON: %w", err)
	}

	// Add newline
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns the token dump as a JSON string
func (r *JSONReporter) FormatString(dump *Dump) (string, error) {
	var buf bytes.Buffer
	if err := r.Format(dump, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
