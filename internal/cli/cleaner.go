package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Cleaner handles cleaning up generated files
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanGeneratedFiles removes all bridge_autogen.rs files from the specified
// directories, honoring the same "/..." recursion patterns the scanner uses.
// It returns the paths it removed.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removed []string
	for _, dir := range directories {
		if err := c.cleanDirectory(dir, &removed); err != nil {
			return removed, fmt.Errorf("failed to clean directory %s: %w", dir, err)
		}
	}
	return removed, nil
}

func (c *Cleaner) cleanDirectory(dir string, removed *[]string) error {
	if strings.HasSuffix(dir, "/...") {
		baseDir := strings.TrimSuffix(dir, "/...")
		if baseDir == "" {
			baseDir = "."
		}
		return filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				// Ignore per-directory failures so one bad directory does
				// not abort the whole cleanup
				_ = c.cleanSingleDirectory(path, removed)
			}
			return nil
		})
	}
	return c.cleanSingleDirectory(dir, removed)
}

func (c *Cleaner) cleanSingleDirectory(dir string, removed *[]string) error {
	generated := filepath.Join(dir, GeneratedFileName)
	if _, err := os.Stat(generated); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to check file %s: %w", generated, err)
	}
	if err := os.Remove(generated); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", generated, err)
	}
	*removed = append(*removed, generated)
	return nil
}
