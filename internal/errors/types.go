package errors

import (
	"fmt"
)

// ErrorCode represents the category of a generator error
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	SyntaxErrorCode
	ValidationErrorCode
	GenerationErrorCode
	TemplateErrorCode
	FileSystemErrorCode
	ManifestErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case ValidationErrorCode:
		return "ValidationError"
	case GenerationErrorCode:
		return "GenerationError"
	case TemplateErrorCode:
		return "TemplateError"
	case FileSystemErrorCode:
		return "FileSystemError"
	case ManifestErrorCode:
		return "ManifestError"
	default:
		return "UnknownError"
	}
}

// SourceLocation identifies where in a scanned file an error originated
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

// String formats the location as file:line:column, omitting unknown parts
func (l SourceLocation) String() string {
	if l.File == "" {
		return ""
	}
	if l.Line == 0 {
		return l.File
	}
	if l.Column == 0 {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// BaseError is the common error type for all generator failures
type BaseError struct {
	Code     ErrorCode
	Message  string
	Location SourceLocation
	Cause    error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	var prefix string
	if loc := e.Location.String(); loc != "" {
		prefix = loc + ": "
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s[%s] %s: %v", prefix, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s[%s] %s", prefix, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As chains
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithLocation attaches a source location and returns the error
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Location = loc
	return e
}

// New creates a BaseError with the given code and formatted message
func New(code ErrorCode, format string, args ...interface{}) *BaseError {
	return &BaseError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a BaseError wrapping a cause
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{Code: code, Message: message, Cause: cause}
}
