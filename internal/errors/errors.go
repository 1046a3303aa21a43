package errors

import "fmt"

// ScanError reports a malformed lexeme found while tokenizing a source file
type ScanError struct {
	File   string
	Offset int    // Byte offset of the first character of the lexeme
	Lexeme string // The malformed text, including the offending character
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s:%d: invalid lexeme %q", e.File, e.Offset, e.Lexeme)
}

// NewScanError creates a new ScanError
func NewScanError(file string, offset int, lexeme string) *ScanError {
	return &ScanError{
		File:   file,
		Offset: offset,
		Lexeme: lexeme,
	}
}

// DiscoveryError represents source-file discovery failure
type DiscoveryError struct {
	Path    string
	Message string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("failed to discover sources in %s: %s", e.Path, e.Message)
}

// NewDiscoveryError creates a new DiscoveryError
func NewDiscoveryError(path, message string) *DiscoveryError {
	return &DiscoveryError{
		Path:    path,
		Message: message,
	}
}

// ReportError represents token report formatting failure
type ReportError struct {
	Format  string
	Message string
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("failed to format %s report: %s", e.Format, e.Message)
}

// NewReportError creates a new ReportError
func NewReportError(format, message string) *ReportError {
	return &ReportError{
		Format:  format,
		Message: message,
	}
}
