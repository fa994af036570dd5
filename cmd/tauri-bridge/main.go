package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/NexRX/tauri-bridge/internal/cli"
	"github.com/NexRX/tauri-bridge/internal/utils"
)

func main() {
	var (
		crateFlag   = flag.String("crate", "", "Crate name for generated file headers (defaults to Cargo.toml package name)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all bridge_autogen.rs files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Tauri Bridge Code Generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Rust functions annotated with #[tauri_bridge] and generates\n")
		fmt.Fprintf(os.Stderr, "the backend command wrapper plus the WASM client bindings for each.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./src/...          Scan src and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./src/commands     Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./src/...                         # Scan src recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --crate my-app ./src              # Override the crate name\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./src/...               # Enable detailed output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...                     # Delete all bridge_autogen.rs files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Tauri Bridge Code Generator")

	if *cleanFlag {
		diagnostics.StartProgress("Cleaning generated files")
		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(args)
		if err != nil {
			diagnostics.EndProgress(false, "")
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}
		diagnostics.EndProgress(true, fmt.Sprintf("%d files removed", len(removed)))
		return
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *crateFlag != "" {
			diagnostics.List("Custom crate: %s", *crateFlag)
		}
	}

	config := &cli.Config{
		Directories: args,
		CrateName:   *crateFlag,
		Verbose:     *verboseFlag,
	}

	bridgeGenerator := cli.NewBridgeGenerator(config, diagnostics)
	if err := bridgeGenerator.Run(); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	diagnostics.GenerationComplete()
}
