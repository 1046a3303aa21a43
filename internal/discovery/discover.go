package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover finds oso source files under the given path.
//
// A directory is walked recursively and every *.oso file below it is
// returned; subtrees the process cannot read are skipped. A path naming a
// regular file is accepted as-is regardless of extension, so a caller can
// always tokenize an explicitly named file.
func Discover(rootPath string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	// An explicitly named file is tokenized even without the .oso extension.
	if !info.IsDir() {
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			ModTime:      info.ModTime(),
		}}, nil
	}

	var files []DiscoveredFile

	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !strings.HasSuffix(strings.ToLower(path), SourceExtension) {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return files, nil
}
