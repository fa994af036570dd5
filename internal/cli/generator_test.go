package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NexRX/tauri-bridge/internal/utils"
)

const annotatedSource = `use std::fmt;

/// Greets someone by name.
#[tauri_bridge]
pub fn greet(name: &str) -> String {
    format!("Hello, {}!", name)
}

#[tauri_bridge]
pub fn get_version() -> String {
    env!("CARGO_PKG_VERSION").to_string()
}
`

func quietDiagnostics() *utils.DiagnosticSystem {
	d := utils.NewQuietDiagnostics()
	d.SetOutput(&bytes.Buffer{})
	return d
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestBridgeGenerator_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "commands.rs"), annotatedSource)

	config := &Config{Directories: []string{dir}, CrateName: "demo-app"}
	generator := NewBridgeGenerator(config, quietDiagnostics())
	require.NoError(t, generator.Run())

	outPath := filepath.Join(dir, GeneratedFileName)
	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	output := string(content)

	assert.Contains(t, output, "// Code generated by tauri-bridge. DO NOT EDIT.")
	assert.Contains(t, output, "// Crate: demo-app")
	assert.Contains(t, output, "// Sources: commands.rs")

	// Backend artifacts
	assert.Contains(t, output, "mod __tauri_cmd_greet {")
	assert.Contains(t, output, "/// Greets someone by name.")
	assert.Contains(t, output, "#[tauri::command]")
	assert.Contains(t, output, "pub use __tauri_cmd_greet::greet;")

	// Client artifacts
	assert.Contains(t, output, "struct GreetArgs<'a> {")
	assert.Contains(t, output, "pub async fn try_greet<'a>(name: &'a str) -> Result<String, String> {")
	assert.Contains(t, output, `crate::invoke("greet", args).await`)
	assert.Contains(t, output, "pub async fn try_get_version() -> Result<String, String> {")
	assert.Contains(t, output, "serde_wasm_bindgen::to_value(&serde_json::Value::Null)")
}

func TestBridgeGenerator_SkipsDirectoriesWithoutAnnotations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "plain.rs"), "pub fn plain() {}\n")

	config := &Config{Directories: []string{dir}, CrateName: "demo-app"}
	generator := NewBridgeGenerator(config, quietDiagnostics())
	require.NoError(t, generator.Run())

	_, err := os.Stat(filepath.Join(dir, GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestBridgeGenerator_RecursivePattern(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src", "commands")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(nested, "api.rs"), annotatedSource)

	config := &Config{Directories: []string{root + "/..."}, CrateName: "demo-app"}
	generator := NewBridgeGenerator(config, quietDiagnostics())
	require.NoError(t, generator.Run())

	content, err := os.ReadFile(filepath.Join(nested, GeneratedFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "try_greet")
}

func TestBridgeGenerator_RegeneratesIdempotently(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "commands.rs"), annotatedSource)

	config := &Config{Directories: []string{dir}, CrateName: "demo-app"}
	require.NoError(t, NewBridgeGenerator(config, quietDiagnostics()).Run())
	first, err := os.ReadFile(filepath.Join(dir, GeneratedFileName))
	require.NoError(t, err)

	// A second run must not pick up its own output as a source
	require.NoError(t, NewBridgeGenerator(config, quietDiagnostics()).Run())
	second, err := os.ReadFile(filepath.Join(dir, GeneratedFileName))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestCleaner_RemovesGeneratedFiles(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, filepath.Join(root, GeneratedFileName), "// generated\n")
	writeFile(t, filepath.Join(nested, GeneratedFileName), "// generated\n")
	writeFile(t, filepath.Join(nested, "keep.rs"), "pub fn keep() {}\n")

	removed, err := NewCleaner().CleanGeneratedFiles([]string{root + "/..."})
	require.NoError(t, err)
	assert.Len(t, removed, 2)

	_, err = os.Stat(filepath.Join(root, GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(nested, GeneratedFileName))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(nested, "keep.rs"))
	assert.NoError(t, err)
}

func TestCleaner_NoGeneratedFilesIsNoError(t *testing.T) {
	removed, err := NewCleaner().CleanGeneratedFiles([]string{t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, removed)
}
