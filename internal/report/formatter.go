package report

import (
	"fmt"
	"io"
)

// Formatter is an interface for token report formatters
type Formatter interface {
	// Format formats the token dump and writes to the writer
	Format(dump *Dump, writer io.Writer) error

	// FormatString returns the token dump as a string
	FormatString(dump *Dump) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json)", format)
	}
}

// FormatToWriter formats a token dump to a writer using the specified format
func FormatToWriter(dump *Dump, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(dump, writer)
}

// FormatToString formats a token dump to a string using the specified format
func FormatToString(dump *Dump, format FormatType) (string, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return "", err
	}
	return formatter.FormatString(dump)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON)}
}
