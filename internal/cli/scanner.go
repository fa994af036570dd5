package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NexRX/tauri-bridge/internal/errors"
)

// DirectoryScanner handles directory scanning for Rust sources
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories resolves the provided directory patterns into the list of
// directories that contain Rust files. A trailing "/..." scans recursively,
// matching the pattern style of Go tooling; a plain path is taken as-is.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	seen := make(map[string]bool)
	var result []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			result = append(result, dir)
		}
	}

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			dirs, err := s.scanRecursively(baseDir)
			if err != nil {
				return nil, err
			}
			for _, dir := range dirs {
				add(dir)
			}
			continue
		}

		if hasRustFiles(rootDir) {
			add(filepath.Clean(rootDir))
		}
	}

	sort.Strings(result)
	return result, nil
}

// RustFiles lists the Rust source files directly inside dir, excluding
// previously generated output
func (s *DirectoryScanner) RustFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".rs") || name == GeneratedFileName {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

func (s *DirectoryScanner) scanRecursively(baseDir string) ([]string, error) {
	var dirs []string
	err := filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories that cannot be accessed
			return nil
		}
		if info.IsDir() {
			// Build output directories never hold sources worth scanning
			if info.Name() == "target" && path != baseDir {
				return filepath.SkipDir
			}
			if hasRustFiles(path) {
				dirs = append(dirs, filepath.Clean(path))
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", baseDir, err)
	}
	return dirs, nil
}

func hasRustFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasSuffix(name, ".rs") && name != GeneratedFileName {
			return true
		}
	}
	return false
}
