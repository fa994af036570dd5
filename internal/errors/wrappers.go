package errors

import "fmt"

// Common error wrapping patterns used throughout the codebase

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *BaseError {
	return Wrap(SyntaxErrorCode, fmt.Sprintf("failed to parse %s", item), cause)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName string, cause error) *BaseError {
	return Wrap(TemplateErrorCode, fmt.Sprintf("failed to execute template '%s'", templateName), cause)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("failed to %s file '%s'", operation, path), cause)
}

// WrapManifestError wraps Cargo manifest resolution errors
func WrapManifestError(path string, cause error) *BaseError {
	return Wrap(ManifestErrorCode, fmt.Sprintf("failed to read manifest '%s'", path), cause)
}
