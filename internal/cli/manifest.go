package cli

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/NexRX/tauri-bridge/internal/errors"
)

// CrateResolver resolves the crate name recorded in generated file headers
type CrateResolver struct{}

// NewCrateResolver creates a new crate resolver
func NewCrateResolver() *CrateResolver {
	return &CrateResolver{}
}

// cargoManifest is the subset of Cargo.toml the resolver reads
type cargoManifest struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

// ResolveCrateName returns customName if provided, otherwise reads the
// package name from the nearest Cargo.toml, walking up from the working
// directory.
func (r *CrateResolver) ResolveCrateName(customName string) (string, error) {
	if customName != "" {
		return customName, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.ManifestErrorCode, "failed to get current directory", err)
	}

	for {
		manifestPath := filepath.Join(currentDir, "Cargo.toml")
		if _, err := os.Stat(manifestPath); err == nil {
			return r.parseManifest(manifestPath)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.New(errors.ManifestErrorCode, "Cargo.toml not found (consider using --crate)")
}

func (r *CrateResolver) parseManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapManifestError(path, err)
	}

	var manifest cargoManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return "", errors.WrapManifestError(path, err)
	}
	if manifest.Package.Name == "" {
		return "", errors.New(errors.ManifestErrorCode, "no package name in '%s'", path)
	}
	return manifest.Package.Name, nil
}
