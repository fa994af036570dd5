package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/NexRX/tauri-bridge/internal/errors"
	"github.com/NexRX/tauri-bridge/internal/generator"
	"github.com/NexRX/tauri-bridge/internal/models"
	"github.com/NexRX/tauri-bridge/internal/parser"
	"github.com/NexRX/tauri-bridge/internal/utils"
)

// GeneratedFileName is the output file written into each directory that
// contains bridged functions
const GeneratedFileName = "bridge_autogen.rs"

// BridgeGenerator drives the scan/parse/generate/write pipeline
type BridgeGenerator struct {
	config      *Config
	diagnostics *utils.DiagnosticSystem
	scanner     *DirectoryScanner
	extractor   *parser.Extractor
	generator   *generator.Generator
	resolver    *CrateResolver
}

// NewBridgeGenerator creates a generator driver for the given configuration
func NewBridgeGenerator(config *Config, diagnostics *utils.DiagnosticSystem) *BridgeGenerator {
	return &BridgeGenerator{
		config:      config,
		diagnostics: diagnostics,
		scanner:     NewDirectoryScanner(),
		extractor:   parser.NewExtractor(),
		generator:   generator.New(),
		resolver:    NewCrateResolver(),
	}
}

// Run executes the full pipeline and reports a summary
func (b *BridgeGenerator) Run() error {
	crateName, err := b.resolver.ResolveCrateName(b.config.CrateName)
	if err != nil {
		b.diagnostics.Warn("Could not resolve crate name: %v", err)
		crateName = "unknown"
	}
	b.diagnostics.Verbose("Crate: %s", crateName)

	dirs, err := b.scanner.ScanDirectories(b.config.Directories)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		b.diagnostics.Warn("No directories with Rust files found")
		return nil
	}

	var written []string
	totalBridges := 0
	for _, dir := range dirs {
		file, err := b.processDirectory(dir, crateName)
		if err != nil {
			return err
		}
		if file == nil {
			continue
		}
		if err := os.WriteFile(file.Path, []byte(file.Content), 0644); err != nil {
			return errors.WrapFileSystemError("write", file.Path, err)
		}
		b.diagnostics.Success("Wrote %s (%d bridged functions)", file.Path, file.BridgeCount)
		written = append(written, file.Path)
		totalBridges += file.BridgeCount
	}

	b.diagnostics.Summary("Generation summary", map[string]interface{}{
		"Directories scanned": len(dirs),
		"Files written":       len(written),
		"Bridged functions":   totalBridges,
	})
	return nil
}

// processDirectory extracts and generates bridges for one directory. It
// returns nil when the directory has no annotated functions.
func (b *BridgeGenerator) processDirectory(dir, crateName string) (*models.GeneratedFile, error) {
	files, err := b.scanner.RustFiles(dir)
	if err != nil {
		return nil, err
	}

	var bridges []*models.GeneratedBridge
	var sources []string
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.WrapFileSystemError("read", file, err)
		}

		signatures, err := b.extractor.ExtractBridgedFunctions(file, string(content))
		if err != nil {
			return nil, err
		}
		if len(signatures) == 0 {
			continue
		}

		b.diagnostics.Verbose("Found %d bridged functions in %s", len(signatures), file)
		for _, sig := range signatures {
			bridge, err := b.generator.GenerateBridge(sig)
			if err != nil {
				return nil, errors.WrapGenerateError(fmt.Sprintf("bridge for %s", sig.Name), err)
			}
			bridges = append(bridges, bridge)
		}
		sources = append(sources, filepath.Base(file))
	}

	if len(bridges) == 0 {
		return nil, nil
	}

	return &models.GeneratedFile{
		Path:        filepath.Join(dir, GeneratedFileName),
		Content:     assembleFile(crateName, sources, bridges),
		BridgeCount: len(bridges),
		SourceFiles: sources,
	}, nil
}

// assembleFile concatenates the artifacts of every bridge under a generated
// file header. Backend and client fragments of the same function share the
// function's name; the cfg gates keep them out of each other's builds.
func assembleFile(crateName string, sources []string, bridges []*models.GeneratedBridge) string {
	var sb strings.Builder
	sb.WriteString("// Code generated by tauri-bridge. DO NOT EDIT.\n")
	sb.WriteString(fmt.Sprintf("// Crate: %s\n", crateName))
	sb.WriteString(fmt.Sprintf("// Sources: %s\n", strings.Join(sources, ", ")))

	for _, bridge := range bridges {
		sb.WriteString("\n")
		sb.WriteString(bridge.Backend)
		sb.WriteString("\n")
		sb.WriteString(bridge.Client)
	}
	return sb.String()
}
