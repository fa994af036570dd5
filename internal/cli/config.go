package cli

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Rust files
	Directories []string

	// CrateName is the crate name recorded in generated file headers.
	// If empty, it is resolved from the nearest Cargo.toml.
	CrateName string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}
