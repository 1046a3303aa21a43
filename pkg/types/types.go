package types

// Config holds runtime configuration combining flags and defaults
type Config struct {
	// Input
	SearchPath string // Root path for source discovery (file or directory)

	// Output
	Format        string // Token report format (text or json)
	Output        string // Output file path ("-" = stdout)
	FailOnInvalid bool   // Exit non-zero when any Invalid token is produced
	Verbose       bool   // Enable debug logging
}
