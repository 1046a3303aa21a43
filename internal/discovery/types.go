package discovery

import "time"

// DiscoveredFile represents an oso source file found during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	ModTime      time.Time // Last modification time
}

// SourceExtension is the file extension of oso source files
const SourceExtension = ".oso"
