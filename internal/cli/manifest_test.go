package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestResolveCrateName_CustomNameWins(t *testing.T) {
	name, err := NewCrateResolver().ResolveCrateName("custom-crate")
	require.NoError(t, err)
	assert.Equal(t, "custom-crate", name)
}

func TestResolveCrateName_ReadsCargoManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := `[package]
name = "demo-app"
version = "0.1.0"
edition = "2021"

[dependencies]
serde = "1"
`
	writeFile(t, filepath.Join(dir, "Cargo.toml"), manifest)
	chdir(t, dir)

	name, err := NewCrateResolver().ResolveCrateName("")
	require.NoError(t, err)
	assert.Equal(t, "demo-app", name)
}

func TestResolveCrateName_WalksUpToManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "commands")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[package]\nname = \"workspace-app\"\n")
	chdir(t, nested)

	name, err := NewCrateResolver().ResolveCrateName("")
	require.NoError(t, err)
	assert.Equal(t, "workspace-app", name)
}

func TestResolveCrateName_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "not toml = = =\n")
	chdir(t, dir)

	_, err := NewCrateResolver().ResolveCrateName("")
	require.Error(t, err)
}

func TestResolveCrateName_ManifestWithoutName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nversion = \"0.1.0\"\n")
	chdir(t, dir)

	_, err := NewCrateResolver().ResolveCrateName("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no package name")
}
